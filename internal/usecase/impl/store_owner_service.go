package impl

import (
	"context"
	"log/slog"

	deliverycontext "storerating/internal/delivery/context"
	"storerating/internal/domain/entity"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/domain/repository"
	"storerating/internal/domain/service"
	"storerating/internal/errors"
	"storerating/internal/usecase"

	"go.uber.org/fx"
)

type storeOwnerService struct {
	userRepo   repository.UserRepository
	storeRepo  repository.StoreRepository
	ratingRepo repository.RatingRepository
	qrService  service.QRCodeService
	logger     *slog.Logger
}

// StoreOwnerServiceParams holds dependencies for StoreOwnerService, injected by Fx.
type StoreOwnerServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	StoreRepo  repository.StoreRepository
	RatingRepo repository.RatingRepository
	QRService  service.QRCodeService
	Logger     *slog.Logger
}

// NewStoreOwnerService is the constructor for storeOwnerService.
func NewStoreOwnerService(params StoreOwnerServiceParams) usecase.StoreOwnerUsecase {
	return &storeOwnerService{
		userRepo:   params.UserRepo,
		storeRepo:  params.StoreRepo,
		ratingRepo: params.RatingRepo,
		qrService:  params.QRService,
		logger:     params.Logger,
	}
}

func (srv *storeOwnerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Dashboard returns the owner's store with its rating summary and raters.
func (srv *storeOwnerService) Dashboard(ctx context.Context, ownerID int64) (*usecase.OwnerDashboard, error) {
	store, err := srv.ownedStore(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	summary, err := srv.ratingRepo.SummaryForStore(ctx, store.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize store ratings")
	}

	raters, err := srv.ratingRepo.RatersForStore(ctx, store.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list store raters")
	}

	return &usecase.OwnerDashboard{
		Store:   store,
		Summary: summary,
		Raters:  raters,
	}, nil
}

// StoreQRCode renders a QR code pointing at the owner's store page.
func (srv *storeOwnerService) StoreQRCode(ctx context.Context, ownerID int64) (*usecase.StoreQRCode, error) {
	store, err := srv.ownedStore(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateStoreQR(store.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to render store QR code", slog.Int64("storeID", store.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate store QR code")
	}

	return &usecase.StoreQRCode{
		StoreID: store.ID,
		URL:     srv.qrService.StoreURL(store.ID),
		PNG:     png,
	}, nil
}

func (srv *storeOwnerService) ownedStore(ctx context.Context, ownerID int64) (*entity.Store, error) {
	owner, err := srv.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "store owner")
		}

		return nil, errors.Wrap(err, "failed to find store owner")
	}

	if !owner.OwnsStore() {
		srv.log(ctx).Warn("Store owner has no store", slog.Int64("userID", ownerID))

		return nil, errors.Wrap(domainerrors.ErrStoreOwnerWithoutStore, "store owner")
	}

	store, err := srv.storeRepo.FindByID(ctx, *owner.StoreID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStoreOwnerWithoutStore, "store owner")
		}

		return nil, errors.Wrap(err, "failed to find owned store")
	}

	return store, nil
}
