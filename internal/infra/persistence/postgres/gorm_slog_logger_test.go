package postgres

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"storerating/config"
	deliverycontext "storerating/internal/delivery/context"
	"storerating/internal/domain/entity"
	"storerating/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func newCapturingLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func decodeRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var records []map[string]any
	scanner := bufio.NewScanner(buf)
	for scanner.Scan() {
		record := map[string]any{}
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &record))
		records = append(records, record)
	}
	require.NoError(t, scanner.Err())

	return records
}

func recordsWithMessage(records []map[string]any, msg string) []map[string]any {
	var matched []map[string]any
	for _, record := range records {
		if record["msg"] == msg {
			matched = append(matched, record)
		}
	}

	return matched
}

func TestGormSlogLogger_DuplicateEmailIsWarning(t *testing.T) {
	log, buf := newCapturingLogger()
	db := newTestDBWithLogger(t, log, &config.Config{})
	seedUser(t, db, "Normal User With Long Name", "user@example.com", entity.RoleNormalUser, nil)
	buf.Reset()

	err := NewUserRepository(db).Create(context.Background(), &entity.User{
		Name:         "Second User With Same Email",
		Email:        "user@example.com",
		PasswordHash: "hash",
		Role:         entity.RoleNormalUser,
	})
	require.ErrorIs(t, err, repository.ErrDuplicateEmail)

	records := decodeRecords(t, buf)
	violations := recordsWithMessage(records, "GORM constraint violation")
	require.Len(t, violations, 1)
	assert.Equal(t, "WARN", violations[0]["level"])
	assert.Equal(t, "insert", violations[0]["operation"])
	assert.Empty(t, recordsWithMessage(records, "GORM query failed"))
}

func TestGormSlogLogger_SlowAggregateQuery(t *testing.T) {
	log, buf := newCapturingLogger()
	cfg := &config.Config{}
	cfg.Env.Log.SlowQueryThreshold = time.Nanosecond
	db := newTestDBWithLogger(t, log, cfg)
	store := seedStore(t, db, "Alpha Hardware and Garden Supply", "alpha@example.com", "10 Oak Ave")
	buf.Reset()

	_, err := NewRatingRepository(db).SummaryForStore(context.Background(), store.ID)
	require.NoError(t, err)

	slow := recordsWithMessage(decodeRecords(t, buf), "GORM slow query")
	require.NotEmpty(t, slow)
	assert.Equal(t, "WARN", slow[0]["level"])
	assert.Equal(t, "select", slow[0]["operation"])
	assert.Equal(t, true, slow[0]["rating_aggregate"])
	assert.Contains(t, slow[0]["sql"], "AVG(")
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	base, baseBuf := newCapturingLogger()
	reqLog, reqBuf := newCapturingLogger()
	cfg := &config.Config{}
	cfg.Env.Log.SlowQueryThreshold = time.Nanosecond
	db := newTestDBWithLogger(t, base, cfg)
	baseBuf.Reset()

	ctx := deliverycontext.WithLogger(context.Background(), reqLog.With(slog.String("request_id", "req-42")))
	_, err := NewRatingRepository(db).Count(ctx)
	require.NoError(t, err)

	assert.Empty(t, decodeRecords(t, baseBuf))
	slow := recordsWithMessage(decodeRecords(t, reqBuf), "GORM slow query")
	require.NotEmpty(t, slow)
	assert.Equal(t, "req-42", slow[0]["request_id"])
	assert.Equal(t, "gorm", slow[0]["component"])
}

func TestGormSlogLogger_RecordNotFoundIsNotLogged(t *testing.T) {
	log, buf := newCapturingLogger()
	db := newTestDBWithLogger(t, log, &config.Config{})
	buf.Reset()

	_, err := NewStoreRepository(db).FindByID(context.Background(), 404)
	require.ErrorIs(t, err, repository.ErrStoreNotFound)

	assert.Empty(t, decodeRecords(t, buf))
}

func TestGormSlogLogger_LogMode(t *testing.T) {
	log, buf := newCapturingLogger()
	gl := newGormSlogLogger(log, &config.Config{})

	gl.Info(context.Background(), "hidden %d", 1)
	assert.Zero(t, buf.Len())

	gl.LogMode(logger.Info).Info(context.Background(), "migrated %d tables", 3)
	records := decodeRecords(t, buf)
	require.Len(t, records, 1)
	assert.Equal(t, "migrated 3 tables", records[0]["message"])
}

func TestSQLOperation(t *testing.T) {
	assert.Equal(t, "select", sqlOperation("  SELECT * FROM stores"))
	assert.Equal(t, "update", sqlOperation("UPDATE ratings SET rating = 4"))
	assert.Empty(t, sqlOperation(""))
}
