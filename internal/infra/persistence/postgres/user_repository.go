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

var userSortColumns = map[entity.UserSortField]string{
	entity.UserSortByName:    "u.name",
	entity.UserSortByEmail:   "u.email",
	entity.UserSortByAddress: "u.address",
	entity.UserSortByRole:    "u.role",
}

const userColumns = `u.id, u.name, u.email, u.password_hash, u.address, u.role, u.store_id,
	u.created_at, u.updated_at, s.name AS store_name`

// userRow is a user joined with the name of the store it owns.
type userRow struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
	Address      *string
	Role         string
	StoreID      *int64
	StoreName    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a user by id together with the owned store's name.
func (repo *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	return repo.findOne(ctx, "u.id = ?", id)
}

// FindByEmail retrieves a user by email. Emails are compared lower-cased.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return repo.findOne(ctx, "u.email = ?", normalizeEmail(email))
}

func (repo *userRepository) findOne(ctx context.Context, cond string, arg any) (*entity.User, error) {
	var rows []userRow
	if err := repo.joinedQuery(ctx).Where(cond, arg).Limit(1).Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}
	if len(rows) == 0 {
		return nil, repository.ErrUserNotFound
	}

	return toUserDomain(&rows[0]), nil
}

// ExistsByEmail reports whether an account already uses email.
func (repo *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("email = ?", normalizeEmail(email)).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check user email")
	}

	return count > 0, nil
}

// Create persists a new user.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Omit("Store").Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateEmail
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrStoreNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid role")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdatePassword replaces the stored password hash.
func (repo *userRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update("password_hash", passwordHash)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update password")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// List returns users matching query.
func (repo *userRepository) List(ctx context.Context, query entity.UserListQuery) ([]*entity.User, error) {
	column, ok := userSortColumns[query.SortBy]
	if !ok {
		column = userSortColumns[entity.UserSortByName]
	}
	order := entity.ParseSortOrder(string(query.SortOrder))

	db := repo.joinedQuery(ctx)
	db = whereContains(db, "u.name", query.Filter.Name)
	db = whereContains(db, "u.email", query.Filter.Email)
	db = whereContains(db, "u.address", query.Filter.Address)
	if role := strings.TrimSpace(query.Filter.Role); role != "" {
		db = db.Where("u.role = ?", role)
	}

	var rows []userRow
	if err := db.
		Order(column + " " + string(order)).
		Order("u.id ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(rows))
	for i := range rows {
		users = append(users, toUserDomain(&rows[i]))
	}

	return users, nil
}

// Count returns the number of users.
func (repo *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := repo.db.WithContext(ctx).Model(&model.UserModel{}).Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count users")
	}

	return count, nil
}

// Delete removes a user by id.
func (repo *userRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.UserModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

func (repo *userRepository) joinedQuery(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Table("users AS u").
		Select(userColumns).
		Joins("LEFT JOIN stores s ON s.id = u.store_id")
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func toUserDomain(row *userRow) *entity.User {
	return &entity.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Address:      row.Address,
		Role:         entity.RoleOrDefault(row.Role),
		StoreID:      row.StoreID,
		StoreName:    row.StoreName,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func fromUserDomain(user *entity.User) *model.UserModel {
	role := user.Role
	if !role.IsValid() {
		role = entity.RoleNormalUser
	}

	return &model.UserModel{
		ID:           user.ID,
		Name:         user.Name,
		Email:        normalizeEmail(user.Email),
		PasswordHash: user.PasswordHash,
		Address:      user.Address,
		Role:         role.String(),
		StoreID:      user.StoreID,
	}
}
