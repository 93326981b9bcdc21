package entity

import "strings"

// SortOrder is the direction of a list sort.
type SortOrder string

const (
	SortAsc  SortOrder = "ASC"
	SortDesc SortOrder = "DESC"
)

// ParseSortOrder accepts asc/desc in any case and falls back to ascending.
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(strings.TrimSpace(s), string(SortDesc)) {
		return SortDesc
	}

	return SortAsc
}

// StoreSortField is a whitelisted column stores can be sorted by.
type StoreSortField string

const (
	StoreSortByName    StoreSortField = "name"
	StoreSortByEmail   StoreSortField = "email"
	StoreSortByAddress StoreSortField = "address"
	StoreSortByRating  StoreSortField = "rating"
)

// ParseStoreSortField returns the field named by s when it is in allowed,
// otherwise StoreSortByName.
func ParseStoreSortField(s string, allowed ...StoreSortField) StoreSortField {
	for _, field := range allowed {
		if string(field) == s {
			return field
		}
	}

	return StoreSortByName
}

// StoreFilter narrows a store listing. Empty fields do not filter.
// Matching is a case-insensitive substring match.
type StoreFilter struct {
	Name    string
	Email   string
	Address string
}

// StoreListQuery describes a store listing request.
// ViewerID, when set, annotates every store with that user's rating.
type StoreListQuery struct {
	Filter    StoreFilter
	SortBy    StoreSortField
	SortOrder SortOrder
	ViewerID  *int64
}

// UserSortField is a whitelisted column users can be sorted by.
type UserSortField string

const (
	UserSortByName    UserSortField = "name"
	UserSortByEmail   UserSortField = "email"
	UserSortByAddress UserSortField = "address"
	UserSortByRole    UserSortField = "role"
)

// ParseUserSortField falls back to UserSortByName for anything unknown.
func ParseUserSortField(s string) UserSortField {
	switch field := UserSortField(s); field {
	case UserSortByName, UserSortByEmail, UserSortByAddress, UserSortByRole:
		return field
	default:
		return UserSortByName
	}
}

// UserFilter narrows a user listing. Name, Email and Address are
// case-insensitive substring matches; Role is an exact match.
type UserFilter struct {
	Name    string
	Email   string
	Address string
	Role    string
}

// UserListQuery describes a user listing request.
type UserListQuery struct {
	Filter    UserFilter
	SortBy    UserSortField
	SortOrder SortOrder
}

// DashboardStats holds the administrator dashboard counters.
type DashboardStats struct {
	TotalUsers   int64
	TotalStores  int64
	TotalRatings int64
}
