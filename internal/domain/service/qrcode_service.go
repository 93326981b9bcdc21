package service

// QRCodeService renders QR codes that lead customers to a store's rating page.
type QRCodeService interface {
	// GenerateStoreQR returns a PNG QR code encoding the rating page URL of storeID.
	GenerateStoreQR(storeID int64) ([]byte, error)

	// StoreURL returns the rating page URL encoded in the store's QR code.
	StoreURL(storeID int64) string
}
