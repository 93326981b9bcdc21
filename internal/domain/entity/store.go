package entity

import "time"

// Store is a rateable shop created by an administrator.
type Store struct {
	ID        int64
	Name      string
	Email     string
	Address   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StoreWithRating is a store together with its derived rating aggregate.
// UserRating is the rating left by the viewing user, nil when the viewer
// has not rated the store or is not a normal user.
type StoreWithRating struct {
	Store
	AverageRating AverageRating
	TotalRatings  int64
	UserRating    *int
}
