package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "storerating/internal/delivery/context"
	"storerating/internal/delivery/http/response"
	"storerating/internal/delivery/http/validator"
	"storerating/internal/domain/entity"
	"storerating/internal/errors"
	"storerating/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// adminStoreSortFields are the store columns administrators may sort by.
var adminStoreSortFields = []entity.StoreSortField{
	entity.StoreSortByName,
	entity.StoreSortByEmail,
	entity.StoreSortByAddress,
	entity.StoreSortByRating,
}

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves the system administrator routes.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// CreateStoreRequest is the body of POST /api/admin/stores.
type CreateStoreRequest struct {
	Name    string  `json:"name" validate:"not_blank,max=255"`
	Email   string  `json:"email" validate:"email"`
	Address *string `json:"address" validate:"omitempty,max=400"`
}

// CreateUserRequest is the body of POST /api/admin/users.
type CreateUserRequest struct {
	Name     string        `json:"name" validate:"name_length"`
	Email    string        `json:"email" validate:"email"`
	Password string        `json:"password" validate:"password_length,password_strength"`
	Address  *string       `json:"address" validate:"omitempty,max=400"`
	Role     string        `json:"role"`
	StoreID  validator.Int `json:"store_id" validate:"omitempty,gte=1"`
}

type dashboardResponse struct {
	TotalUsers   int64 `json:"totalUsers"`
	TotalStores  int64 `json:"totalStores"`
	TotalRatings int64 `json:"totalRatings"`
}

// Dashboard handles GET /api/admin/dashboard.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	stats, err := h.adminUC.Dashboard(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, dashboardResponse{
		TotalUsers:   stats.TotalUsers,
		TotalStores:  stats.TotalStores,
		TotalRatings: stats.TotalRatings,
	})
}

// ListStores handles GET /api/admin/stores.
func (h *AdminHandler) ListStores(c echo.Context) error {
	query := entity.StoreListQuery{
		Filter: entity.StoreFilter{
			Name:    c.QueryParam("name"),
			Email:   c.QueryParam("email"),
			Address: c.QueryParam("address"),
		},
		SortBy:    entity.ParseStoreSortField(c.QueryParam("sortBy"), adminStoreSortFields...),
		SortOrder: entity.ParseSortOrder(c.QueryParam("sortOrder")),
	}

	stores, err := h.adminUC.ListStores(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"stores": toAdminStoresJSON(stores)})
}

// CreateStore handles POST /api/admin/stores.
func (h *AdminHandler) CreateStore(c echo.Context) error {
	var req CreateStoreRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	store, err := h.adminUC.CreateStore(c.Request().Context(), &usecase.CreateStoreInput{
		Name:    req.Name,
		Email:   req.Email,
		Address: req.Address,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"message": "Store added successfully",
		"store":   toStoreJSON(store),
	})
}

// DeleteStore handles DELETE /api/admin/stores/:id.
func (h *AdminHandler) DeleteStore(c echo.Context) error {
	storeID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.adminUC.DeleteStore(c.Request().Context(), storeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Store deleted successfully")
}

// ListUsers handles GET /api/admin/users.
func (h *AdminHandler) ListUsers(c echo.Context) error {
	query := entity.UserListQuery{
		Filter: entity.UserFilter{
			Name:    c.QueryParam("name"),
			Email:   c.QueryParam("email"),
			Address: c.QueryParam("address"),
			Role:    c.QueryParam("role"),
		},
		SortBy:    entity.ParseUserSortField(c.QueryParam("sortBy")),
		SortOrder: entity.ParseSortOrder(c.QueryParam("sortOrder")),
	}

	users, err := h.adminUC.ListUsers(c.Request().Context(), query)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"users": toUsersJSON(users)})
}

// CreateUser handles POST /api/admin/users.
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req CreateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.adminUC.CreateUser(c.Request().Context(), &usecase.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
		Role:     req.Role,
		StoreID:  req.StoreID.Ptr(),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]any{
		"message": "User added successfully",
		"user":    toUserJSON(user),
	})
}

// GetUser handles GET /api/admin/users/:id.
func (h *AdminHandler) GetUser(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.adminUC.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"user": toUserDetailJSON(detail)})
}

// DeleteUser handles DELETE /api/admin/users/:id.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	userID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	actorID, _ := deliverycontext.GetUserID(c)
	if err := h.adminUC.DeleteUser(c.Request().Context(), actorID, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "User deleted successfully")
}
