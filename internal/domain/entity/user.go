// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// User is an account of any role.
type User struct {
	ID           int64     // Database generated identifier.
	Name         string    // Display name, 20 to 60 characters.
	Email        string    // Unique login identifier, stored lower-cased.
	PasswordHash string    // bcrypt hash. Never leaves the service.
	Address      *string   // Optional postal address.
	Role         Role      // Closed set of roles, see role.go.
	StoreID      *int64    // Store the account owns. Only set for store owners.
	StoreName    *string   // Name of the owned store when loaded through a join.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// OwnsStore reports whether the user is a store owner attached to a store.
func (u *User) OwnsStore() bool {
	return u != nil && u.Role == RoleStoreOwner && u.StoreID != nil
}

// UserDetail is a user as seen by an administrator. Store owners carry the
// rating summary of their store.
type UserDetail struct {
	User
	Summary *RatingSummary
}
