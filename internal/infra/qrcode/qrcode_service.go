package qrcode

import (
	"strconv"
	"strings"

	"storerating/config"
	"storerating/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	defaultBaseURL = "http://localhost:3000"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates the store QR code service from the qrcode config section.
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level, baseURL := defaultSize, "", defaultBaseURL
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
		if cfg.QRCode.BaseURL != "" {
			baseURL = cfg.QRCode.BaseURL
		}
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(level),
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// parseRecoveryLevel accepts both the single letter and the spelled out level.
func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// StoreURL returns the rating page of storeID.
func (s *qrcodeService) StoreURL(storeID int64) string {
	return s.baseURL + "/stores/" + strconv.FormatInt(storeID, 10)
}

// GenerateStoreQR renders the store's rating page URL as a PNG.
func (s *qrcodeService) GenerateStoreQR(storeID int64) ([]byte, error) {
	if storeID <= 0 {
		return nil, errors.Errorf("invalid store id: %d", storeID)
	}

	qrCode, err := qrcode.New(s.StoreURL(storeID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}
