package postgres

import (
	"context"
	"testing"

	"storerating/internal/domain/entity"
	"storerating/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	errBoom := errors.New("boom")

	err := NewTransactionManager(db).Execute(ctx, func(factory repository.RepositoryFactory) error {
		store := &entity.Store{Name: "Alpha Hardware and Garden Supply", Email: "alpha@example.com"}
		if err := factory.NewStoreRepository().Create(ctx, store); err != nil {
			return err
		}

		return errBoom
	})
	assert.ErrorIs(t, err, errBoom)

	count, err := NewStoreRepository(db).Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestTransactionManager_Commits(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	err := NewTransactionManager(db).Execute(ctx, func(factory repository.RepositoryFactory) error {
		store := &entity.Store{Name: "Alpha Hardware and Garden Supply", Email: "alpha@example.com"}
		if err := factory.NewStoreRepository().Create(ctx, store); err != nil {
			return err
		}

		return factory.NewUserRepository().Create(ctx, &entity.User{
			Name:         "Store Owner Account Name",
			Email:        "owner@example.com",
			PasswordHash: "hash",
			Role:         entity.RoleStoreOwner,
			StoreID:      &store.ID,
		})
	})
	require.NoError(t, err)

	owner, err := NewUserRepository(db).FindByEmail(ctx, "owner@example.com")
	require.NoError(t, err)
	assert.True(t, owner.OwnsStore())
}

func TestContainsPattern_EscapesWildcards(t *testing.T) {
	assert.Equal(t, `%100\%%`, containsPattern("100%"))
	assert.Equal(t, `%a\_b%`, containsPattern("a_b"))
	assert.Equal(t, `%c\\d%`, containsPattern(`c\d`))
}
