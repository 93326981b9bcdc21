package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storerating/internal/delivery/context"
	"storerating/internal/domain/entity"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/domain/repository"
	"storerating/internal/domain/service"
	"storerating/internal/errors"
	"storerating/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type ratingService struct {
	storeRepo  repository.StoreRepository
	ratingRepo repository.RatingRepository
	publisher  service.EventPublisher
	logger     *slog.Logger
	now        func() time.Time
}

// RatingServiceParams holds dependencies for RatingService, injected by Fx.
type RatingServiceParams struct {
	fx.In

	StoreRepo  repository.StoreRepository
	RatingRepo repository.RatingRepository
	Publisher  service.EventPublisher
	Logger     *slog.Logger
}

// NewRatingService is the constructor for ratingService.
func NewRatingService(params RatingServiceParams) usecase.RatingUsecase {
	return &ratingService{
		storeRepo:  params.StoreRepo,
		ratingRepo: params.RatingRepo,
		publisher:  params.Publisher,
		logger:     params.Logger,
		now:        time.Now,
	}
}

func (srv *ratingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListStores lists stores annotated with the caller's own rating.
func (srv *ratingService) ListStores(ctx context.Context, userID int64, query entity.StoreListQuery) ([]*entity.StoreWithRating, error) {
	query.ViewerID = &userID

	stores, err := srv.storeRepo.List(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	return stores, nil
}

// GetStore returns one store annotated with the caller's own rating.
func (srv *ratingService) GetStore(ctx context.Context, userID, storeID int64) (*entity.StoreWithRating, error) {
	store, err := srv.storeRepo.FindWithRating(ctx, storeID, &userID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, errors.Wrap(domainerrors.ErrStoreNotFound, "store lookup")
		}

		return nil, errors.Wrap(err, "failed to find store")
	}

	return store, nil
}

// SubmitRating creates the caller's rating of a store or overwrites the existing one.
func (srv *ratingService) SubmitRating(ctx context.Context, input *usecase.SubmitRatingInput) (*entity.RatingResult, error) {
	if input.Rating < entity.MinRating || input.Rating > entity.MaxRating {
		return nil, errors.Wrap(domainerrors.ErrRatingOutOfRange, "rating submission")
	}

	exists, err := srv.storeRepo.ExistsByID(ctx, input.StoreID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check store")
	}
	if !exists {
		return nil, errors.Wrap(domainerrors.ErrStoreNotFound, "rating submission")
	}

	result, err := srv.ratingRepo.Upsert(ctx, input.UserID, input.StoreID, input.Rating)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrStoreNotFound):
			return nil, errors.Wrap(domainerrors.ErrStoreNotFound, "rating submission")
		case errors.Is(err, repository.ErrUserNotFound):
			// The token outlived its account.
			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "rating submission")
		}

		return nil, errors.Wrap(err, "failed to save rating")
	}
	srv.log(ctx).Info("Rating saved",
		slog.Int64("userID", input.UserID),
		slog.Int64("storeID", input.StoreID),
		slog.Int("rating", input.Rating),
		slog.Bool("created", result.Created),
	)

	srv.publish(ctx, result)

	return result, nil
}

// UpdateRating changes one of the caller's own ratings by id.
func (srv *ratingService) UpdateRating(ctx context.Context, input *usecase.UpdateRatingInput) (*entity.Rating, error) {
	if input.Rating < entity.MinRating || input.Rating > entity.MaxRating {
		return nil, errors.Wrap(domainerrors.ErrRatingOutOfRange, "rating update")
	}

	rating, err := srv.ratingRepo.UpdateOwned(ctx, input.RatingID, input.UserID, input.Rating)
	if err != nil {
		if errors.Is(err, repository.ErrRatingNotFound) {
			return nil, errors.Wrap(domainerrors.ErrRatingNotFound, "rating update")
		}

		return nil, errors.Wrap(err, "failed to update rating")
	}

	srv.publish(ctx, &entity.RatingResult{Rating: rating, Created: false})

	return rating, nil
}

// publish emits a rating event. Delivery failures are logged and never fail the request.
func (srv *ratingService) publish(ctx context.Context, result *entity.RatingResult) {
	if srv.publisher == nil || result == nil || result.Rating == nil {
		return
	}

	event := &service.RatingEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventID:   uuid.NewString(),
		Type:      service.EventRatingSubmitted,
		RatingID:  result.Rating.ID,
		UserID:    result.Rating.UserID,
		StoreID:   result.Rating.StoreID,
		Rating:    result.Rating.Rating,
		Created:   result.Created,
		At:        srv.now().UTC(),
	}

	if err := srv.publisher.PublishRatingEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish rating event",
			slog.String("eventID", event.EventID),
			slog.Int64("storeID", event.StoreID),
			slog.Any("error", err),
		)
	}
}
