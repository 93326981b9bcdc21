// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"storerating/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required for self-registration.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Address  *string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput is returned by registration and login.
type AuthOutput struct {
	Token     string
	ExpiresAt time.Time
	User      *entity.User
}

// AuthUsecase covers the identity lifecycle of an account.
type AuthUsecase interface {
	// Register creates a normal_user account and signs a token for it.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login verifies credentials and signs a token.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Me returns the account behind an authenticated request.
	Me(ctx context.Context, userID int64) (*entity.User, error)
}
