package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"storerating/config"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(size int, level, baseURL string) *config.Config {
	return &config.Config{QRCode: &config.QRCodeConfig{
		Size:                 size,
		ErrorCorrectionLevel: level,
		BaseURL:              baseURL,
	}}
}

func TestParseRecoveryLevel(t *testing.T) {
	tests := []struct {
		level string
		want  qrcode.RecoveryLevel
	}{
		{"L", qrcode.Low},
		{"low", qrcode.Low},
		{"M", qrcode.Medium},
		{"Q", qrcode.High},
		{"H", qrcode.Highest},
		{"highest", qrcode.Highest},
		{"invalid", qrcode.Medium},
		{"", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRecoveryLevel(tt.level))
		})
	}
}

func TestQRCodeService_StoreURL(t *testing.T) {
	service := NewQRCodeService(newTestConfig(256, "M", "https://ratings.example.com/"))

	assert.Equal(t, "https://ratings.example.com/stores/42", service.StoreURL(42))
}

func TestQRCodeService_DefaultsWithoutConfig(t *testing.T) {
	service := NewQRCodeService(&config.Config{})

	assert.Equal(t, defaultBaseURL+"/stores/7", service.StoreURL(7))
}

func TestQRCodeService_GenerateStoreQR(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(newTestConfig(tt.size, "M", "https://ratings.example.com"))

			pngBytes, err := service.GenerateStoreQR(42)
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(pngBytes))
			require.NoError(t, err)
			assert.Equal(t, tt.size, img.Bounds().Dx())
		})
	}
}

func TestQRCodeService_GenerateStoreQR_InvalidStore(t *testing.T) {
	service := NewQRCodeService(newTestConfig(256, "M", ""))

	_, err := service.GenerateStoreQR(0)
	assert.Error(t, err)
}
