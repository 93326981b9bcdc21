package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storerating/internal/delivery/context"
	"storerating/internal/domain/entity"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/domain/repository"
	"storerating/internal/domain/service"
	"storerating/internal/errors"
	"storerating/internal/usecase"

	"go.uber.org/fx"
)

type adminService struct {
	txManager  repository.TransactionManager
	userRepo   repository.UserRepository
	storeRepo  repository.StoreRepository
	ratingRepo repository.RatingRepository
	hasher     service.PasswordHasher
	logger     *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	UserRepo   repository.UserRepository
	StoreRepo  repository.StoreRepository
	RatingRepo repository.RatingRepository
	Hasher     service.PasswordHasher
	Logger     *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:  params.TxManager,
		userRepo:   params.UserRepo,
		storeRepo:  params.StoreRepo,
		ratingRepo: params.RatingRepo,
		hasher:     params.Hasher,
		logger:     params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Dashboard counts users, stores and ratings.
func (srv *adminService) Dashboard(ctx context.Context) (*entity.DashboardStats, error) {
	users, err := srv.userRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count users")
	}

	stores, err := srv.storeRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count stores")
	}

	ratings, err := srv.ratingRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count ratings")
	}

	return &entity.DashboardStats{
		TotalUsers:   users,
		TotalStores:  stores,
		TotalRatings: ratings,
	}, nil
}

// CreateStore adds a store. Store emails are unique.
func (srv *adminService) CreateStore(ctx context.Context, input *usecase.CreateStoreInput) (*entity.Store, error) {
	store := &entity.Store{
		Name:    strings.TrimSpace(input.Name),
		Email:   normalizeEmail(input.Email),
		Address: input.Address,
	}

	exists, err := srv.storeRepo.ExistsByEmail(ctx, store.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check store email")
	}
	if exists {
		return nil, errors.Wrap(domainerrors.ErrStoreAlreadyExists, "store creation rejected")
	}

	if err := srv.storeRepo.Create(ctx, store); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, errors.Wrap(domainerrors.ErrStoreAlreadyExists, "store creation rejected")
		}

		return nil, errors.Wrap(err, "failed to create store")
	}
	srv.log(ctx).Info("Store created", slog.Int64("storeID", store.ID), slog.String("email", store.Email))

	return store, nil
}

// ListStores lists every store with its rating aggregate.
func (srv *adminService) ListStores(ctx context.Context, query entity.StoreListQuery) ([]*entity.StoreWithRating, error) {
	query.ViewerID = nil

	stores, err := srv.storeRepo.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	return stores, nil
}

// DeleteStore removes a store and its ratings. Owners are detached.
func (srv *adminService) DeleteStore(ctx context.Context, storeID int64) error {
	if err := srv.storeRepo.Delete(ctx, storeID); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return errors.Wrap(domainerrors.ErrStoreNotFound, "store deletion")
		}

		return errors.Wrap(err, "failed to delete store")
	}
	srv.log(ctx).Info("Store deleted", slog.Int64("storeID", storeID))

	return nil
}

// CreateUser adds an account of any role. An unknown role becomes normal_user
// and a store is only attached to store owners.
func (srv *adminService) CreateUser(ctx context.Context, input *usecase.CreateUserInput) (*entity.User, error) {
	role := entity.RoleOrDefault(input.Role)

	user := &entity.User{
		Name:    strings.TrimSpace(input.Name),
		Email:   normalizeEmail(input.Email),
		Address: input.Address,
		Role:    role,
	}
	if role == entity.RoleStoreOwner {
		user.StoreID = input.StoreID
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}
	user.PasswordHash = hash

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		exists, err := userRepo.ExistsByEmail(ctx, user.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email availability")
		}
		if exists {
			return errors.Wrap(domainerrors.ErrUserAlreadyExists, "user creation rejected")
		}

		if user.StoreID != nil {
			found, err := repoFactory.NewStoreRepository().ExistsByID(ctx, *user.StoreID)
			if err != nil {
				return errors.Wrap(err, "failed to check store")
			}
			if !found {
				return errors.Wrap(domainerrors.ErrStoreNotFound, "user creation rejected")
			}
		}

		return userRepo.Create(ctx, user)
	})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateEmail):
			return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "user creation rejected")
		case errors.Is(err, repository.ErrStoreNotFound):
			return nil, errors.Wrap(domainerrors.ErrStoreNotFound, "user creation rejected")
		}
		srv.log(ctx).Warn("Failed to create user", slog.String("email", user.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user creation transaction")
	}
	srv.log(ctx).Info("User created", slog.Int64("userID", user.ID), slog.String("role", role.String()))

	return user, nil
}

// ListUsers lists accounts with optional filters.
func (srv *adminService) ListUsers(ctx context.Context, query entity.UserListQuery) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// GetUser returns one account. Store owners carry their store's rating summary.
func (srv *adminService) GetUser(ctx context.Context, userID int64) (*entity.UserDetail, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "user lookup")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	detail := &entity.UserDetail{User: *user}
	if user.OwnsStore() {
		summary, err := srv.ratingRepo.SummaryForStore(ctx, *user.StoreID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to summarize store ratings")
		}
		detail.Summary = summary
	}

	return detail, nil
}

// DeleteUser removes an account and its ratings.
func (srv *adminService) DeleteUser(ctx context.Context, actorID, userID int64) error {
	if actorID == userID {
		return errors.Wrap(domainerrors.ErrCannotDeleteSelf, "user deletion")
	}

	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "user deletion")
		}

		return errors.Wrap(err, "failed to delete user")
	}
	srv.log(ctx).Info("User deleted", slog.Int64("userID", userID), slog.Int64("actorID", actorID))

	return nil
}
