package postgres

import (
	"context"
	"testing"

	"storerating/internal/domain/entity"
	"storerating/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	store := seedStore(t, db, "Alpha Hardware and Garden Supply", "alpha@example.com", "10 Oak Ave")
	owner := seedUser(t, db, "Store Owner Account Name", "Owner@Example.com", entity.RoleStoreOwner, &store.ID)
	repo := NewUserRepository(db)

	assert.NotZero(t, owner.ID)
	assert.False(t, owner.CreatedAt.IsZero())

	found, err := repo.FindByEmail(ctx, "owner@example.com")
	require.NoError(t, err)
	assert.Equal(t, owner.ID, found.ID)
	assert.Equal(t, "owner@example.com", found.Email)
	assert.Equal(t, entity.RoleStoreOwner, found.Role)
	require.NotNil(t, found.StoreName)
	assert.Equal(t, "Alpha Hardware and Garden Supply", *found.StoreName)
	assert.True(t, found.OwnsStore())

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_CreateRejectsDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	seedUser(t, db, "Normal User With Long Name", "user@example.com", entity.RoleNormalUser, nil)

	err := NewUserRepository(db).Create(context.Background(), &entity.User{
		Name:         "Second User With Same Email",
		Email:        "USER@example.com",
		PasswordHash: "hash",
		Role:         entity.RoleNormalUser,
	})
	assert.ErrorIs(t, err, repository.ErrDuplicateEmail)
}

func TestUserRepository_CreateWithUnknownStore(t *testing.T) {
	db := newTestDB(t)

	err := NewUserRepository(db).Create(context.Background(), &entity.User{
		Name:         "Store Owner Account Name",
		Email:        "owner@example.com",
		PasswordHash: "hash",
		Role:         entity.RoleStoreOwner,
		StoreID:      int64Ptr(404),
	})
	assert.ErrorIs(t, err, repository.ErrStoreNotFound)
}

func TestUserRepository_UpdatePassword(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db, "Normal User With Long Name", "user@example.com", entity.RoleNormalUser, nil)
	repo := NewUserRepository(db)

	require.NoError(t, repo.UpdatePassword(ctx, user.ID, "new-hash"))

	found, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "new-hash", found.PasswordHash)

	assert.ErrorIs(t, repo.UpdatePassword(ctx, 999, "x"), repository.ErrUserNotFound)
}

func TestUserRepository_ListFiltersAndSorts(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	store := seedStore(t, db, "Alpha Hardware and Garden Supply", "alpha@example.com", "10 Oak Ave")
	seedUser(t, db, "Charlie Administrator Account", "charlie@example.com", entity.RoleSystemAdministrator, nil)
	seedUser(t, db, "Alice Normal User Account", "alice@example.com", entity.RoleNormalUser, nil)
	seedUser(t, db, "Bob Store Owner Account Name", "bob@shop.test", entity.RoleStoreOwner, &store.ID)
	repo := NewUserRepository(db)

	users, err := repo.List(ctx, entity.UserListQuery{})
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "Alice Normal User Account", users[0].Name)

	users, err = repo.List(ctx, entity.UserListQuery{SortBy: entity.UserSortByEmail, SortOrder: entity.SortDesc})
	require.NoError(t, err)
	assert.Equal(t, "charlie@example.com", users[0].Email)

	users, err = repo.List(ctx, entity.UserListQuery{Filter: entity.UserFilter{Role: "store_owner"}})
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.NotNil(t, users[0].StoreName)
	assert.Equal(t, "Alpha Hardware and Garden Supply", *users[0].StoreName)

	users, err = repo.List(ctx, entity.UserListQuery{Filter: entity.UserFilter{Email: "EXAMPLE.COM", Name: "ali"}})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "alice@example.com", users[0].Email)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestUserRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	user := seedUser(t, db, "Normal User With Long Name", "user@example.com", entity.RoleNormalUser, nil)
	repo := NewUserRepository(db)

	require.NoError(t, repo.Delete(ctx, user.ID))
	assert.ErrorIs(t, repo.Delete(ctx, user.ID), repository.ErrUserNotFound)

	exists, err := repo.ExistsByEmail(ctx, "user@example.com")
	require.NoError(t, err)
	assert.False(t, exists)
}
