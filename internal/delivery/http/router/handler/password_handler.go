package handler

import (
	"net/http"

	"storerating/internal/delivery/http/response"
	"storerating/internal/errors"
	"storerating/internal/usecase"

	"github.com/labstack/echo/v4"
)

// PasswordHandler lets a signed-in user change their password.
type PasswordHandler struct {
	passwordUC usecase.PasswordUsecase
}

// NewPasswordHandler is the constructor for PasswordHandler.
func NewPasswordHandler(passwordUC usecase.PasswordUsecase) *PasswordHandler {
	return &PasswordHandler{passwordUC: passwordUC}
}

// UpdatePasswordRequest is the body of PUT .../password.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"password_length,password_strength"`
}

// UpdatePassword handles PUT /api/user/password and PUT /api/store-owner/password.
func (h *PasswordHandler) UpdatePassword(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req UpdatePasswordRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if err := h.passwordUC.UpdatePassword(c.Request().Context(), &usecase.UpdatePasswordInput{
		UserID:          userID,
		CurrentPassword: req.CurrentPassword,
		NewPassword:     req.NewPassword,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Password updated successfully")
}
