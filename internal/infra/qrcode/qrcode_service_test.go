package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"landmarket/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "m"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
		{"Zero size", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(tt.size, tt.errorCorrectionLevel)
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateListingQR(t *testing.T) {
	service := NewQRCodeService(256, "M")

	qrBytes, err := service.GenerateListingQR("https://land.example.com/listings/abc123")
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(qrBytes, pngMagic))

	img, err := png.Decode(bytes.NewReader(qrBytes))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestQRCodeService_SizeIsClamped(t *testing.T) {
	tests := []struct {
		name string
		size int
		want int
	}{
		{"Too small", 16, minSize},
		{"In range", 512, 512},
		{"Too large", 4096, maxSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			qrBytes, err := NewQRCodeService(tt.size, "M").GenerateListingQR("https://land.example.com/listings/x")
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(qrBytes))
			require.NoError(t, err)
			assert.Equal(t, tt.want, img.Bounds().Dx())
		})
	}
}

func TestQRCodeService_RejectsNonHTTPURLs(t *testing.T) {
	service := NewQRCodeService(256, "M")

	for _, raw := range []string{"", "/listings/abc", "javascript:alert(1)", "ftp://land.example.com/x", "https://"} {
		t.Run(raw, func(t *testing.T) {
			_, err := service.GenerateListingQR(raw)
			assert.Error(t, err)
		})
	}
}

func TestNewQRCodeServiceFromConfig(t *testing.T) {
	assert.NotNil(t, NewQRCodeServiceFromConfig(&config.Config{}))
	assert.NotNil(t, NewQRCodeServiceFromConfig(&config.Config{QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: "H"}}))
}
