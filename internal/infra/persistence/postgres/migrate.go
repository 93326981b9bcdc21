package postgres

import (
	"context"
	"database/sql"

	"storerating/internal/errors"
	"storerating/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// migrateLockID serializes schema migrations across replicas starting together.
const migrateLockID int64 = 730_214_001

// Migrate creates or updates the stores, users and ratings tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	migrate := func(tx *gorm.DB) error {
		if err := tx.WithContext(ctx).AutoMigrate(model.AllModels()...); err != nil {
			return errors.Wrap(err, "auto migrate")
		}

		return nil
	}

	if db.Dialector.Name() != "postgres" {
		return migrate(db)
	}

	return withMigrationLock(ctx, db, migrate)
}

func withMigrationLock(ctx context.Context, db *gorm.DB, fn func(*gorm.DB) error) error {
	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "get sql db")
	}

	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return errors.Wrap(err, "open sql conn")
	}
	defer conn.Close()

	if err := execAdvisory(ctx, conn, "SELECT pg_advisory_lock($1)"); err != nil {
		return errors.Wrap(err, "acquire migrate lock")
	}
	defer func() {
		_ = execAdvisory(context.WithoutCancel(ctx), conn, "SELECT pg_advisory_unlock($1)")
	}()

	return fn(db)
}

func execAdvisory(ctx context.Context, conn *sql.Conn, query string) error {
	_, err := conn.ExecContext(ctx, query, migrateLockID)

	return err
}
