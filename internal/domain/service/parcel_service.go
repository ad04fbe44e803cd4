package service

// ParcelService interprets seller-supplied parcel boundaries.
type ParcelService interface {
	// AreaAcres returns the geodesic area of a GeoJSON polygon in acres.
	AreaAcres(boundary string) (float64, error)
}
