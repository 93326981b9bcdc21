package handler

import (
	"log/slog"
	"net/http"
	"time"

	"storerating/internal/delivery/http/response"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/errors"
	"storerating/internal/infra/metrics"
	"storerating/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC  usecase.AuthUsecase
	Metrics *metrics.Metrics
	Logger  *slog.Logger
}

// AuthHandler serves registration, login and the current user.
type AuthHandler struct {
	authUC  usecase.AuthUsecase
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:  params.AuthUC,
		metrics: params.Metrics,
		logger:  params.Logger,
	}
}

// RegisterRequest is the self-registration body.
type RegisterRequest struct {
	Name     string  `json:"name" validate:"name_length"`
	Email    string  `json:"email" validate:"email"`
	Password string  `json:"password" validate:"password_length,password_strength"`
	Address  *string `json:"address" validate:"omitempty,max=400"`
}

// LoginRequest is the login body.
type LoginRequest struct {
	Email    string `json:"email" validate:"email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Message   string    `json:"message"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	User      userJSON  `json:"user"`
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
	})
	if err != nil {
		h.record("register", err)

		return errors.WithStack(err)
	}
	h.record("register", nil)

	return response.Success(c, http.StatusCreated, authResponse{
		Message:   "User registered successfully",
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
		User:      toUserJSON(output.User),
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	output, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.record("login", err)

		return errors.WithStack(err)
	}
	h.record("login", nil)

	return response.Success(c, http.StatusOK, authResponse{
		Message:   "Login successful",
		Token:     output.Token,
		ExpiresAt: output.ExpiresAt,
		User:      toUserJSON(output.User),
	})
}

// Me handles GET /api/auth/me.
func (h *AuthHandler) Me(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	user, err := h.authUC.Me(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{"user": toUserJSON(user)})
}

func (h *AuthHandler) record(action string, err error) {
	if h.metrics == nil {
		return
	}

	outcome := "success"
	switch {
	case err == nil:
	case errors.IsAny(err, domainerrors.ErrInvalidCredentials, domainerrors.ErrUserAlreadyExists):
		outcome = "rejected"
	default:
		outcome = "error"
	}
	h.metrics.AuthAttempt(action, outcome)
}
