// Package handler contains the HTTP handlers for the application.
package handler

import (
	"encoding/json"
	"strconv"
	"time"

	deliverycontext "storerating/internal/delivery/context"
	"storerating/internal/delivery/http/validator"
	"storerating/internal/domain/entity"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/errors"

	"github.com/labstack/echo/v4"
)

// bindAndValidate decodes the request into req and runs the echo validator on it.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			return errors.WithStack(validator.NewTypeError(typeErr.Field))
		}

		return domainerrors.ErrInvalidInput
	}

	if err := c.Validate(req); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// pathID parses a positive integer path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrInvalidInput.WithMessage("Invalid " + name)
	}

	return id, nil
}

// currentUserID returns the caller set by the auth middleware.
func currentUserID(c echo.Context) (int64, error) {
	id, ok := deliverycontext.GetUserID(c)
	if !ok {
		return 0, domainerrors.ErrUnauthorized
	}

	return id, nil
}

// --- Response bodies ---

type userJSON struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Address   *string     `json:"address"`
	Role      entity.Role `json:"role"`
	StoreID   *int64      `json:"store_id"`
	StoreName *string     `json:"store_name"`
	CreatedAt time.Time   `json:"created_at"`
}

func toUserJSON(u *entity.User) userJSON {
	return userJSON{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Address:   u.Address,
		Role:      u.Role,
		StoreID:   u.StoreID,
		StoreName: u.StoreName,
		CreatedAt: u.CreatedAt,
	}
}

func toUsersJSON(users []*entity.User) []userJSON {
	out := make([]userJSON, 0, len(users))
	for _, u := range users {
		out = append(out, toUserJSON(u))
	}

	return out
}

type userDetailJSON struct {
	userJSON
	Rating       *entity.AverageRating `json:"rating,omitempty"`
	TotalRatings *int64                `json:"total_ratings,omitempty"`
}

func toUserDetailJSON(d *entity.UserDetail) userDetailJSON {
	out := userDetailJSON{userJSON: toUserJSON(&d.User)}
	if d.Summary != nil {
		out.Rating = &d.Summary.AverageRating
		out.TotalRatings = &d.Summary.TotalRatings
	}

	return out
}

type storeJSON struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Address *string `json:"address"`
}

func toStoreJSON(s *entity.Store) storeJSON {
	return storeJSON{ID: s.ID, Name: s.Name, Email: s.Email, Address: s.Address}
}

// adminStoreJSON is a store with its average, as listed to administrators.
type adminStoreJSON struct {
	storeJSON
	Rating       entity.AverageRating `json:"rating"`
	TotalRatings int64                `json:"total_ratings"`
}

func toAdminStoresJSON(stores []*entity.StoreWithRating) []adminStoreJSON {
	out := make([]adminStoreJSON, 0, len(stores))
	for _, s := range stores {
		out = append(out, adminStoreJSON{
			storeJSON:    toStoreJSON(&s.Store),
			Rating:       s.AverageRating,
			TotalRatings: s.TotalRatings,
		})
	}

	return out
}

// userStoreJSON is a store as browsed by a normal user, with their own rating.
type userStoreJSON struct {
	adminStoreJSON
	UserRating *int `json:"userRating"`
}

func toUserStoreJSON(s *entity.StoreWithRating) userStoreJSON {
	return userStoreJSON{
		adminStoreJSON: adminStoreJSON{
			storeJSON:    toStoreJSON(&s.Store),
			Rating:       s.AverageRating,
			TotalRatings: s.TotalRatings,
		},
		UserRating: s.UserRating,
	}
}

type ratingJSON struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	StoreID   int64     `json:"store_id"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toRatingJSON(r *entity.Rating) ratingJSON {
	return ratingJSON{
		ID:        r.ID,
		UserID:    r.UserID,
		StoreID:   r.StoreID,
		Rating:    r.Rating,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type raterJSON struct {
	ID      int64     `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Address *string   `json:"address"`
	Rating  int       `json:"rating"`
	RatedAt time.Time `json:"ratedAt"`
}

func toRatersJSON(raters []*entity.Rater) []raterJSON {
	out := make([]raterJSON, 0, len(raters))
	for _, r := range raters {
		out = append(out, raterJSON{
			ID:      r.UserID,
			Name:    r.Name,
			Email:   r.Email,
			Address: r.Address,
			Rating:  r.Rating,
			RatedAt: r.RatedAt,
		})
	}

	return out
}
