// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleNormalUser browses stores and submits ratings.
	RoleNormalUser Role = "normal_user"
	// RoleStoreOwner views the aggregate ratings of the store it is attached to.
	RoleStoreOwner Role = "store_owner"
	// RoleSystemAdministrator manages users and stores.
	RoleSystemAdministrator Role = "system_administrator"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleNormalUser, RoleStoreOwner, RoleSystemAdministrator:
		return true
	default:
		return false
	}
}

// ParseRole converts s into a Role. The second result is false when s names no known role.
func ParseRole(s string) (Role, bool) {
	role := Role(s)
	if !role.IsValid() {
		return "", false
	}

	return role, true
}

// RoleOrDefault returns the role named by s, or RoleNormalUser when s is not a known role.
func RoleOrDefault(s string) Role {
	if role, ok := ParseRole(s); ok {
		return role
	}

	return RoleNormalUser
}

// Roles is a set of roles used for authorization checks.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings converts Roles to []string.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}
