package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"storerating/config"
	"storerating/internal/domain/entity"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestDB opens a migrated in-memory SQLite database with foreign keys enforced.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	return newTestDBWithLogger(t, slog.New(slog.NewTextHandler(io.Discard, nil)), &config.Config{})
}

// newTestDBWithLogger is newTestDB with SQL logging routed to the given logger.
func newTestDBWithLogger(t *testing.T, log *slog.Logger, cfg *config.Config) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		TranslateError: true,
		Logger:         newGormSlogLogger(log, cfg),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to :memory: is a separate database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(context.Background(), db))

	return db
}

func strPtr(s string) *string { return &s }

func int64Ptr(v int64) *int64 { return &v }

func seedStore(t *testing.T, db *gorm.DB, name, email, address string) *entity.Store {
	t.Helper()

	store := &entity.Store{Name: name, Email: email, Address: strPtr(address)}
	require.NoError(t, NewStoreRepository(db).Create(context.Background(), store))

	return store
}

func seedUser(t *testing.T, db *gorm.DB, name, email string, role entity.Role, storeID *int64) *entity.User {
	t.Helper()

	user := &entity.User{
		Name:         name,
		Email:        email,
		PasswordHash: "hash",
		Address:      strPtr("1 Test Street"),
		Role:         role,
		StoreID:      storeID,
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), user))

	return user
}
