package postgres

import (
	"context"
	"strings"
	"time"

	"storerating/internal/domain/entity"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/domain/repository"
	"storerating/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storeSortColumns whitelists the ORDER BY expression of each sort field.
var storeSortColumns = map[entity.StoreSortField]string{
	entity.StoreSortByName:    "s.name",
	entity.StoreSortByEmail:   "s.email",
	entity.StoreSortByAddress: "s.address",
	entity.StoreSortByRating:  "average_rating",
}

const storeAggregateColumns = `s.id, s.name, s.email, s.address, s.created_at, s.updated_at,
	CAST(COALESCE(AVG(r.rating), 0) AS FLOAT) AS average_rating,
	COUNT(r.id) AS total_ratings`

// storeRatingRow is the scan target of the aggregate store queries.
type storeRatingRow struct {
	ID            int64
	Name          string
	Email         string
	Address       *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	AverageRating float64
	TotalRatings  int64
	UserRating    *int
}

// storeRepository implements the repository.StoreRepository interface.
type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(db *gorm.DB) repository.StoreRepository {
	return &storeRepository{db: db}
}

// FindByID retrieves a store by id.
func (repo *storeRepository) FindByID(ctx context.Context, id int64) (*entity.Store, error) {
	var storeM model.StoreModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&storeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStoreNotFound
		}

		return nil, errors.Wrap(err, "failed to find store by ID")
	}

	return toStoreDomain(&storeM), nil
}

// FindWithRating retrieves a store with its rating aggregate.
func (repo *storeRepository) FindWithRating(ctx context.Context, id int64, viewerID *int64) (*entity.StoreWithRating, error) {
	var rows []storeRatingRow
	if err := repo.aggregateQuery(ctx, viewerID).
		Where("s.id = ?", id).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find store with rating")
	}
	if len(rows) == 0 {
		return nil, repository.ErrStoreNotFound
	}

	return toStoreWithRating(&rows[0]), nil
}

// ExistsByID reports whether a store exists.
func (repo *storeRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.StoreModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check store existence")
	}

	return count > 0, nil
}

// ExistsByEmail reports whether a store already uses email.
func (repo *storeRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.StoreModel{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check store email")
	}

	return count > 0, nil
}

// Create persists a new store.
func (repo *storeRepository) Create(ctx context.Context, store *entity.Store) error {
	storeM := fromStoreDomain(store)

	if err := repo.db.WithContext(ctx).Create(storeM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create store")
	}

	store.ID = storeM.ID
	store.CreatedAt = storeM.CreatedAt
	store.UpdatedAt = storeM.UpdatedAt

	return nil
}

// List returns the stores matching query with their aggregates.
func (repo *storeRepository) List(ctx context.Context, query entity.StoreListQuery) ([]*entity.StoreWithRating, error) {
	column, ok := storeSortColumns[query.SortBy]
	if !ok {
		column = storeSortColumns[entity.StoreSortByName]
	}
	order := entity.ParseSortOrder(string(query.SortOrder))

	db := repo.aggregateQuery(ctx, query.ViewerID)
	db = whereContains(db, "s.name", query.Filter.Name)
	db = whereContains(db, "s.email", query.Filter.Email)
	db = whereContains(db, "s.address", query.Filter.Address)

	var rows []storeRatingRow
	if err := db.
		Order(column + " " + string(order)).
		Order("s.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list stores")
	}

	stores := make([]*entity.StoreWithRating, 0, len(rows))
	for i := range rows {
		stores = append(stores, toStoreWithRating(&rows[i]))
	}

	return stores, nil
}

// Count returns the number of stores.
func (repo *storeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.StoreModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count stores")
	}

	return count, nil
}

// Delete removes a store by id.
func (repo *storeRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.StoreModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete store")
	}
	if result.RowsAffected == 0 {
		return repository.ErrStoreNotFound
	}

	return nil
}

// aggregateQuery selects stores joined with their ratings. With a viewer the
// viewer's own rating is joined as user_rating.
func (repo *storeRepository) aggregateQuery(ctx context.Context, viewerID *int64) *gorm.DB {
	db := repo.db.WithContext(ctx).
		Table("stores AS s").
		Joins("LEFT JOIN ratings r ON r.store_id = s.id")

	if viewerID == nil {
		return db.Select(storeAggregateColumns).Group("s.id")
	}

	return db.
		Select(storeAggregateColumns+", MAX(ur.rating) AS user_rating").
		Joins("LEFT JOIN ratings ur ON ur.store_id = s.id AND ur.user_id = ?", *viewerID).
		Group("s.id")
}

func toStoreDomain(storeM *model.StoreModel) *entity.Store {
	return &entity.Store{
		ID:        storeM.ID,
		Name:      storeM.Name,
		Email:     storeM.Email,
		Address:   storeM.Address,
		CreatedAt: storeM.CreatedAt,
		UpdatedAt: storeM.UpdatedAt,
	}
}

func fromStoreDomain(store *entity.Store) *model.StoreModel {
	return &model.StoreModel{
		ID:      store.ID,
		Name:    store.Name,
		Email:   store.Email,
		Address: store.Address,
	}
}

func toStoreWithRating(row *storeRatingRow) *entity.StoreWithRating {
	return &entity.StoreWithRating{
		Store: entity.Store{
			ID:        row.ID,
			Name:      row.Name,
			Email:     row.Email,
			Address:   row.Address,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		},
		AverageRating: entity.AverageRating(row.AverageRating),
		TotalRatings:  row.TotalRatings,
		UserRating:    row.UserRating,
	}
}
