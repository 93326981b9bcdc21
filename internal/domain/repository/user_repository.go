// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"storerating/internal/domain/entity"
)

var (
	// ErrUserNotFound is a domain-specific error returned when a user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrDuplicateEmail is returned when an insert hits the unique email constraint.
	ErrDuplicateEmail = errors.New("email already exists")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by id, including the name of the owned store.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByEmail reports whether an account already uses email.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Create persists a new user and fills in the generated id and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// UpdatePassword replaces the stored password hash of a user.
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error

	// List returns users matching the query, joined with their store name.
	List(ctx context.Context, query entity.UserListQuery) ([]*entity.User, error)

	// Count returns the number of users.
	Count(ctx context.Context) (int64, error)

	// Delete removes a user. Their ratings are removed by the database.
	Delete(ctx context.Context, id int64) error
}
