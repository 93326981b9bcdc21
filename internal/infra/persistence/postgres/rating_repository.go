package postgres

import (
	"context"
	"time"

	"storerating/internal/domain/entity"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/domain/repository"
	"storerating/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ratingRepository implements the repository.RatingRepository interface.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

// Upsert overwrites the user's rating of the store or inserts it. The insert
// skips on conflict, so two concurrent first submissions end with one row
// holding the later value.
func (repo *ratingRepository) Upsert(ctx context.Context, userID, storeID int64, value int) (*entity.RatingResult, error) {
	existing, err := repo.overwrite(ctx, userID, storeID, value)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return &entity.RatingResult{Rating: existing, Created: false}, nil
	}

	ratingM := &model.RatingModel{UserID: userID, StoreID: storeID, Rating: value}
	result := repo.db.WithContext(ctx).
		Omit("User", "Store").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "store_id"}},
			DoNothing: true,
		}).
		Create(ratingM)
	if result.Error != nil {
		return nil, repo.translateRatingError(ctx, result.Error, storeID, "failed to create rating")
	}

	if result.RowsAffected == 0 {
		// Lost the race against a concurrent insert for the same pair.
		existing, err = repo.overwrite(ctx, userID, storeID, value)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, domainerrors.NewDatabaseExecuteError(errors.New("rating vanished during upsert"), "failed to upsert rating")
		}

		return &entity.RatingResult{Rating: existing, Created: false}, nil
	}

	return &entity.RatingResult{Rating: toRatingDomain(ratingM), Created: true}, nil
}

// overwrite sets the value of an existing rating. It returns nil when the user
// has not rated the store yet.
func (repo *ratingRepository) overwrite(ctx context.Context, userID, storeID int64, value int) (*entity.Rating, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Where("user_id = ? AND store_id = ?", userID, storeID).
		Update("rating", value)
	if result.Error != nil {
		return nil, repo.translateRatingError(ctx, result.Error, storeID, "failed to update rating")
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return repo.FindByUserAndStore(ctx, userID, storeID)
}

// UpdateOwned changes rating id when it belongs to userID.
func (repo *ratingRepository) UpdateOwned(ctx context.Context, id, userID int64, value int) (*entity.Rating, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("rating", value)
	if result.Error != nil {
		return nil, repo.translateRatingError(ctx, result.Error, 0, "failed to update rating")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrRatingNotFound
	}

	var ratingM model.RatingModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&ratingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRatingNotFound
		}

		return nil, errors.Wrap(err, "failed to reload rating")
	}

	return toRatingDomain(&ratingM), nil
}

// FindByUserAndStore returns userID's rating of storeID.
func (repo *ratingRepository) FindByUserAndStore(ctx context.Context, userID, storeID int64) (*entity.Rating, error) {
	var ratingM model.RatingModel
	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND store_id = ?", userID, storeID).
		First(&ratingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRatingNotFound
		}

		return nil, errors.Wrap(err, "failed to find rating")
	}

	return toRatingDomain(&ratingM), nil
}

// SummaryForStore returns the average and count of a store's ratings.
// A store without ratings averages 0.
func (repo *ratingRepository) SummaryForStore(ctx context.Context, storeID int64) (*entity.RatingSummary, error) {
	var row struct {
		AverageRating float64
		TotalRatings  int64
	}
	if err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Select("CAST(COALESCE(AVG(rating), 0) AS FLOAT) AS average_rating, COUNT(id) AS total_ratings").
		Where("store_id = ?", storeID).
		Scan(&row).Error; err != nil {
		return nil, errors.Wrap(err, "failed to summarize ratings")
	}

	return &entity.RatingSummary{
		StoreID:       storeID,
		AverageRating: entity.AverageRating(row.AverageRating),
		TotalRatings:  row.TotalRatings,
	}, nil
}

// RatersForStore lists the users who rated a store, most recent first.
func (repo *ratingRepository) RatersForStore(ctx context.Context, storeID int64) ([]*entity.Rater, error) {
	var rows []struct {
		UserID  int64
		Name    string
		Email   string
		Address *string
		Rating  int
		RatedAt time.Time
	}
	if err := repo.db.WithContext(ctx).
		Table("ratings AS r").
		Select("u.id AS user_id, u.name, u.email, u.address, r.rating, r.updated_at AS rated_at").
		Joins("JOIN users u ON u.id = r.user_id").
		Where("r.store_id = ?", storeID).
		Order("r.updated_at DESC").
		Order("r.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list raters")
	}

	raters := make([]*entity.Rater, 0, len(rows))
	for _, row := range rows {
		raters = append(raters, &entity.Rater{
			UserID:  row.UserID,
			Name:    row.Name,
			Email:   row.Email,
			Address: row.Address,
			Rating:  row.Rating,
			RatedAt: row.RatedAt,
		})
	}

	return raters, nil
}

// Count returns the number of ratings.
func (repo *ratingRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.RatingModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count ratings")
	}

	return count, nil
}

// translateRatingError maps constraint violations of a rating write. A foreign
// key violation names the missing parent: the store when storeID is gone,
// otherwise the rating user.
func (repo *ratingRepository) translateRatingError(ctx context.Context, err error, storeID int64, details string) error {
	switch {
	case isCheckConstraintViolation(err):
		return domainerrors.ErrRatingOutOfRange
	case isForeignKeyConstraintViolation(err):
		if storeID == 0 {
			return repository.ErrUserNotFound
		}

		var stores int64
		if cerr := repo.db.WithContext(ctx).Model(&model.StoreModel{}).Where("id = ?", storeID).Count(&stores).Error; cerr != nil {
			return domainerrors.NewDatabaseExecuteError(cerr, details)
		}
		if stores == 0 {
			return repository.ErrStoreNotFound
		}

		return repository.ErrUserNotFound
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

func toRatingDomain(ratingM *model.RatingModel) *entity.Rating {
	return &entity.Rating{
		ID:        ratingM.ID,
		UserID:    ratingM.UserID,
		StoreID:   ratingM.StoreID,
		Rating:    ratingM.Rating,
		CreatedAt: ratingM.CreatedAt,
		UpdatedAt: ratingM.UpdatedAt,
	}
}
