package usecase

import (
	"context"

	"storerating/internal/domain/entity"
)

// SubmitRatingInput rates a store, replacing any earlier rating by the same user.
type SubmitRatingInput struct {
	UserID  int64
	StoreID int64
	Rating  int
}

// UpdateRatingInput changes one of the caller's ratings by id.
type UpdateRatingInput struct {
	UserID   int64
	RatingID int64
	Rating   int
}

// RatingUsecase defines what normal users do: browse stores and rate them.
type RatingUsecase interface {
	ListStores(ctx context.Context, userID int64, query entity.StoreListQuery) ([]*entity.StoreWithRating, error)
	GetStore(ctx context.Context, userID, storeID int64) (*entity.StoreWithRating, error)
	SubmitRating(ctx context.Context, input *SubmitRatingInput) (*entity.RatingResult, error)
	UpdateRating(ctx context.Context, input *UpdateRatingInput) (*entity.Rating, error)
}
