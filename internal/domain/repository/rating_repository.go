package repository

import (
	"context"
	"errors"

	"storerating/internal/domain/entity"
)

// ErrRatingNotFound is returned when no rating matches the lookup.
var ErrRatingNotFound = errors.New("rating not found")

// RatingRepository defines persistence operations for ratings.
type RatingRepository interface {
	// Upsert stores value as userID's rating of storeID. An existing rating
	// for the pair is overwritten; otherwise a new row is created.
	Upsert(ctx context.Context, userID, storeID int64, value int) (*entity.RatingResult, error)

	// UpdateOwned changes the value of rating id, but only when it belongs to
	// userID. Returns ErrRatingNotFound otherwise.
	UpdateOwned(ctx context.Context, id, userID int64, value int) (*entity.Rating, error)

	// FindByUserAndStore returns userID's rating of storeID.
	FindByUserAndStore(ctx context.Context, userID, storeID int64) (*entity.Rating, error)

	// SummaryForStore returns the average and count of a store's ratings.
	SummaryForStore(ctx context.Context, storeID int64) (*entity.RatingSummary, error)

	// RatersForStore lists the users who rated a store, newest rating first.
	RatersForStore(ctx context.Context, storeID int64) ([]*entity.Rater, error)

	// Count returns the number of ratings.
	Count(ctx context.Context) (int64, error)
}
