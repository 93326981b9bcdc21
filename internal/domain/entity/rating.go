package entity

import (
	"math"
	"strconv"
	"time"
)

const (
	// MinRating is the lowest score a user can give.
	MinRating = 1
	// MaxRating is the highest score a user can give.
	MaxRating = 5
)

// Rating is a single user's score for a single store. A user has at most one
// rating per store.
type Rating struct {
	ID        int64
	UserID    int64
	StoreID   int64
	Rating    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// AverageRating is the mean rating of a store. It always serializes with two
// decimals so clients can display it as is.
type AverageRating float64

// Rounded returns the value rounded half away from zero to two decimals.
func (a AverageRating) Rounded() float64 {
	return math.Round(float64(a)*100) / 100
}

// String formats the average with two decimals.
func (a AverageRating) String() string {
	return strconv.FormatFloat(a.Rounded(), 'f', 2, 64)
}

// MarshalJSON writes the average as a JSON number with two decimals, e.g. 4.00.
func (a AverageRating) MarshalJSON() ([]byte, error) {
	return []byte(a.String()), nil
}

// RatingSummary aggregates all ratings of a store.
type RatingSummary struct {
	StoreID       int64
	AverageRating AverageRating
	TotalRatings  int64
}

// Rater is a user who rated a store, as shown on the owner's dashboard.
type Rater struct {
	UserID  int64
	Name    string
	Email   string
	Address *string
	Rating  int
	RatedAt time.Time
}

// RatingResult is the outcome of a submission: the stored row and whether it
// was newly created or an existing rating was overwritten.
type RatingResult struct {
	Rating  *Rating
	Created bool
}
