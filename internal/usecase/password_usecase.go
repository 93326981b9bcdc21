package usecase

import "context"

// UpdatePasswordInput defines a self-service password change.
type UpdatePasswordInput struct {
	UserID          int64
	CurrentPassword string
	NewPassword     string
}

// PasswordUsecase lets any signed-in user change their own password.
type PasswordUsecase interface {
	UpdatePassword(ctx context.Context, input *UpdatePasswordInput) error
}
