package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storerating/internal/delivery/http/response"
	"storerating/internal/domain/entity"
	"storerating/internal/errors"
	"storerating/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StoreOwnerHandlerParams holds dependencies for StoreOwnerHandler, injected by Fx.
type StoreOwnerHandlerParams struct {
	fx.In

	StoreOwnerUC usecase.StoreOwnerUsecase
	Logger       *slog.Logger
}

// StoreOwnerHandler serves the store owner routes.
type StoreOwnerHandler struct {
	storeOwnerUC usecase.StoreOwnerUsecase
	logger       *slog.Logger
}

// NewStoreOwnerHandler is the constructor for StoreOwnerHandler.
func NewStoreOwnerHandler(params StoreOwnerHandlerParams) *StoreOwnerHandler {
	return &StoreOwnerHandler{
		storeOwnerUC: params.StoreOwnerUC,
		logger:       params.Logger,
	}
}

type ownerDashboardResponse struct {
	Store         storeJSON            `json:"store"`
	AverageRating entity.AverageRating `json:"averageRating"`
	TotalRatings  int64                `json:"totalRatings"`
	Users         []raterJSON          `json:"users"`
}

// Dashboard handles GET /api/store-owner/dashboard.
func (h *StoreOwnerHandler) Dashboard(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	dashboard, err := h.storeOwnerUC.Dashboard(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, ownerDashboardResponse{
		Store:         toStoreJSON(dashboard.Store),
		AverageRating: dashboard.Summary.AverageRating,
		TotalRatings:  dashboard.Summary.TotalRatings,
		Users:         toRatersJSON(dashboard.Raters),
	})
}

// QRCode handles GET /api/store-owner/qrcode and answers with a PNG image.
func (h *StoreOwnerHandler) QRCode(c echo.Context) error {
	ownerID, err := currentUserID(c)
	if err != nil {
		return err
	}

	qr, err := h.storeOwnerUC.StoreQRCode(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	header := c.Response().Header()
	header.Set("X-Store-Url", qr.URL)
	header.Set(echo.HeaderContentDisposition, `inline; filename="store-`+strconv.FormatInt(qr.StoreID, 10)+`.png"`)

	return c.Blob(http.StatusOK, "image/png", qr.PNG)
}
