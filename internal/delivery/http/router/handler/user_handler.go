package handler

import (
	"log/slog"
	"net/http"

	"storerating/internal/delivery/http/response"
	"storerating/internal/delivery/http/validator"
	"storerating/internal/domain/entity"
	"storerating/internal/errors"
	"storerating/internal/infra/metrics"
	"storerating/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// userStoreSortFields are the store columns normal users may sort by.
var userStoreSortFields = []entity.StoreSortField{
	entity.StoreSortByName,
	entity.StoreSortByAddress,
	entity.StoreSortByRating,
}

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	RatingUC usecase.RatingUsecase
	Metrics  *metrics.Metrics
	Logger   *slog.Logger
}

// UserHandler serves the normal user routes: browsing and rating stores.
type UserHandler struct {
	ratingUC usecase.RatingUsecase
	metrics  *metrics.Metrics
	logger   *slog.Logger
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		ratingUC: params.RatingUC,
		metrics:  params.Metrics,
		logger:   params.Logger,
	}
}

// SubmitRatingRequest is the body of POST /api/user/ratings.
type SubmitRatingRequest struct {
	StoreID validator.Int `json:"store_id" validate:"gte=1"`
	Rating  validator.Int `json:"rating" validate:"min=1,max=5"`
}

// UpdateRatingRequest is the body of PUT /api/user/ratings/:id.
type UpdateRatingRequest struct {
	Rating validator.Int `json:"rating" validate:"min=1,max=5"`
}

// ListStores handles GET /api/user/stores.
func (h *UserHandler) ListStores(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	query := entity.StoreListQuery{
		Filter: entity.StoreFilter{
			Name:    c.QueryParam("name"),
			Address: c.QueryParam("address"),
		},
		SortBy:    entity.ParseStoreSortField(c.QueryParam("sortBy"), userStoreSortFields...),
		SortOrder: entity.ParseSortOrder(c.QueryParam("sortOrder")),
	}

	stores, err := h.ratingUC.ListStores(c.Request().Context(), userID, query)
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]userStoreJSON, 0, len(stores))
	for _, s := range stores {
		out = append(out, toUserStoreJSON(s))
	}

	return response.Success(c, http.StatusOK, map[string]any{"stores": out})
}

// GetStore handles GET /api/user/stores/:id.
func (h *UserHandler) GetStore(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	storeID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	store, err := h.ratingUC.GetStore(c.Request().Context(), userID, storeID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"store": toUserStoreJSON(store)})
}

// SubmitRating handles POST /api/user/ratings. A first rating answers 201,
// replacing an earlier one answers 200.
func (h *UserHandler) SubmitRating(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req SubmitRatingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.ratingUC.SubmitRating(c.Request().Context(), &usecase.SubmitRatingInput{
		UserID:  userID,
		StoreID: req.StoreID.Value,
		Rating:  int(req.Rating.Value),
	})
	if err != nil {
		return errors.WithStack(err)
	}
	if h.metrics != nil {
		h.metrics.RatingSubmitted(result.Created)
	}

	status, message := http.StatusOK, "Rating updated successfully"
	if result.Created {
		status, message = http.StatusCreated, "Rating submitted successfully"
	}

	return response.Success(c, status, map[string]any{
		"message": message,
		"rating":  toRatingJSON(result.Rating),
	})
}

// UpdateRating handles PUT /api/user/ratings/:id.
func (h *UserHandler) UpdateRating(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}
	ratingID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateRatingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	rating, err := h.ratingUC.UpdateRating(c.Request().Context(), &usecase.UpdateRatingInput{
		UserID:   userID,
		RatingID: ratingID,
		Rating:   int(req.Rating.Value),
	})
	if err != nil {
		return errors.WithStack(err)
	}
	if h.metrics != nil {
		h.metrics.RatingSubmitted(false)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"message": "Rating updated successfully",
		"rating":  toRatingJSON(rating),
	})
}
