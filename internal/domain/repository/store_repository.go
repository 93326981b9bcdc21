package repository

import (
	"context"
	"errors"

	"storerating/internal/domain/entity"
)

// ErrStoreNotFound is returned when a store does not exist.
var ErrStoreNotFound = errors.New("store not found")

// StoreRepository defines persistence operations for stores.
type StoreRepository interface {
	// FindByID retrieves a store without its aggregate.
	FindByID(ctx context.Context, id int64) (*entity.Store, error)

	// FindWithRating retrieves a store with its average rating. When viewerID
	// is set the viewer's own rating is attached.
	FindWithRating(ctx context.Context, id int64, viewerID *int64) (*entity.StoreWithRating, error)

	// ExistsByID reports whether a store exists.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// ExistsByEmail reports whether a store already uses email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create persists a new store and fills in the generated id and timestamps.
	Create(ctx context.Context, store *entity.Store) error

	// List returns stores matching the query together with their aggregate.
	List(ctx context.Context, query entity.StoreListQuery) ([]*entity.StoreWithRating, error)

	// Count returns the number of stores.
	Count(ctx context.Context) (int64, error)

	// Delete removes a store. Ratings are cascaded and owners are detached by the database.
	Delete(ctx context.Context, id int64) error
}
