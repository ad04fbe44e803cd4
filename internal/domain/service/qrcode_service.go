package service

// QRCodeService renders share codes for listings
type QRCodeService interface {
	// GenerateListingQR encodes the public listing URL as a PNG QR code
	GenerateListingQR(listingURL string) ([]byte, error)
}
