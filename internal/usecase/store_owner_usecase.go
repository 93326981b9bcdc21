package usecase

import (
	"context"

	"storerating/internal/domain/entity"
)

// OwnerDashboard is what a store owner sees about their store.
type OwnerDashboard struct {
	Store   *entity.Store
	Summary *entity.RatingSummary
	Raters  []*entity.Rater
}

// StoreQRCode is a PNG QR code linking to a store's rating page.
type StoreQRCode struct {
	StoreID int64
	URL     string
	PNG     []byte
}

// StoreOwnerUsecase defines the operations of store owners.
type StoreOwnerUsecase interface {
	Dashboard(ctx context.Context, ownerID int64) (*OwnerDashboard, error)
	StoreQRCode(ctx context.Context, ownerID int64) (*StoreQRCode, error)
}
