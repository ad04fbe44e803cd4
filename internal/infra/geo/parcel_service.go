// Package geo interprets parcel boundaries drawn by sellers.
package geo

import (
	"math"
	"strings"

	"landmarket/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const squareMetersPerAcre = 4046.8564224

// ErrInvalidBoundary is returned for boundaries that are not usable GeoJSON polygons.
var ErrInvalidBoundary = errors.New("invalid parcel boundary")

// Module provides the parcel service.
var Module = fx.Options(
	fx.Provide(NewParcelService),
)

type parcelService struct{}

// NewParcelService is the constructor for parcelService.
func NewParcelService() service.ParcelService {
	return parcelService{}
}

// AreaAcres accepts a GeoJSON Polygon or MultiPolygon, bare or wrapped in a Feature.
func (parcelService) AreaAcres(boundary string) (float64, error) {
	geometry, err := parseBoundary(boundary)
	if err != nil {
		return 0, err
	}

	switch g := geometry.(type) {
	case orb.Polygon:
		if err := validatePolygon(g); err != nil {
			return 0, err
		}
	case orb.MultiPolygon:
		if len(g) == 0 {
			return 0, errors.Wrap(ErrInvalidBoundary, "empty multipolygon")
		}
		for _, p := range g {
			if err := validatePolygon(p); err != nil {
				return 0, err
			}
		}
	default:
		return 0, errors.Wrapf(ErrInvalidBoundary, "unsupported geometry %s", geometry.GeoJSONType())
	}

	return math.Abs(geo.Area(geometry)) / squareMetersPerAcre, nil
}

func parseBoundary(boundary string) (orb.Geometry, error) {
	data := []byte(strings.TrimSpace(boundary))
	if len(data) == 0 {
		return nil, errors.Wrap(ErrInvalidBoundary, "empty boundary")
	}

	if feature, err := geojson.UnmarshalFeature(data); err == nil && feature.Geometry != nil {
		return feature.Geometry, nil
	}

	g, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidBoundary, err.Error())
	}
	if g.Geometry() == nil {
		return nil, errors.Wrap(ErrInvalidBoundary, "missing geometry")
	}

	return g.Geometry(), nil
}

func validatePolygon(p orb.Polygon) error {
	if len(p) == 0 {
		return errors.Wrap(ErrInvalidBoundary, "polygon has no rings")
	}

	for _, ring := range p {
		if len(ring) < 4 {
			return errors.Wrap(ErrInvalidBoundary, "ring needs at least four positions")
		}
		if !ring.Closed() {
			return errors.Wrap(ErrInvalidBoundary, "ring is not closed")
		}
		for _, pt := range ring {
			if pt.Lon() < -180 || pt.Lon() > 180 || pt.Lat() < -90 || pt.Lat() > 90 {
				return errors.Wrap(ErrInvalidBoundary, "position out of range")
			}
		}
	}

	return nil
}
