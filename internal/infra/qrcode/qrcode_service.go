// Package qrcode renders share codes for listings.
package qrcode

import (
	"net/url"
	"strings"

	"landmarket/config"
	"landmarket/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
	"go.uber.org/fx"
)

const (
	defaultSize = 256
	minSize     = 64
	maxSize     = 1024
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// Module provides the QR code service from configuration.
var Module = fx.Options(
	fx.Provide(NewQRCodeServiceFromConfig),
)

// NewQRCodeServiceFromConfig reads the qrcode section, falling back to defaults.
func NewQRCodeServiceFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch strings.ToUpper(errorCorrectionLevel) {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 min(max(size, minSize), maxSize),
		errorCorrectionLevel: level,
	}
}

// GenerateListingQR encodes an absolute http(s) listing URL as a PNG.
func (s *qrcodeService) GenerateListingQR(listingURL string) ([]byte, error) {
	u, err := url.Parse(listingURL)
	if err != nil {
		return nil, errors.Wrap(err, "invalid listing url")
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, errors.Errorf("listing url must be absolute http(s): %q", listingURL)
	}

	qrCode, err := qrcode.New(u.String(), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
