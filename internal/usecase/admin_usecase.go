package usecase

import (
	"context"

	"storerating/internal/domain/entity"
)

// CreateStoreInput defines the data required to add a store.
type CreateStoreInput struct {
	Name    string
	Email   string
	Address *string
}

// CreateUserInput defines an account created by an administrator. Role is
// free text; anything unknown becomes normal_user.
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Address  *string
	Role     string
	StoreID  *int64
}

// AdminUsecase defines the operations reserved to system administrators.
type AdminUsecase interface {
	Dashboard(ctx context.Context) (*entity.DashboardStats, error)
	CreateStore(ctx context.Context, input *CreateStoreInput) (*entity.Store, error)
	ListStores(ctx context.Context, query entity.StoreListQuery) ([]*entity.StoreWithRating, error)
	DeleteStore(ctx context.Context, storeID int64) error
	CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error)
	ListUsers(ctx context.Context, query entity.UserListQuery) ([]*entity.User, error)
	GetUser(ctx context.Context, userID int64) (*entity.UserDetail, error)

	// DeleteUser removes userID. actorID is the administrator making the call
	// and cannot delete their own account.
	DeleteUser(ctx context.Context, actorID, userID int64) error
}
