package service

// QRCodeService defines the interface for store share QR codes
type QRCodeService interface {
	// GenerateStoreQR generates a PNG QR code pointing at the public store page
	GenerateStoreQR(slug string) ([]byte, error)

	// ParseStoreQR extracts the store slug from scanned QR code content
	ParseStoreQR(content string) (string, error)
}
