package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"storerating/config"
	deliverycontext "storerating/internal/delivery/context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

// gormSlogLogger writes GORM output through the request-scoped slog logger, so
// SQL records carry the request id of the call that issued them.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	slowThreshold := defaultGormSlowThreshold
	if cfg != nil {
		if cfg.Env.Debug {
			level = logger.Info
		}
		if cfg.Env.Log.SlowQueryThreshold > 0 {
			slowThreshold = cfg.Env.Log.SlowQueryThreshold
		}
	}

	return &gormSlogLogger{
		logger:        baseLogger.With(slog.String("component", "gorm")),
		level:         level,
		slowThreshold: slowThreshold,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) logf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < threshold {
		return
	}

	l.log(ctx).LogAttrs(ctx, level, "GORM "+strings.ToLower(level.String()),
		slog.String("message", fmt.Sprintf(msg, args...)),
	)
}

// Trace logs a finished statement. Constraint violations are expected outcomes
// here (duplicate emails, unknown stores) and are mapped to domain errors by the
// repositories, so they are logged as warnings rather than errors.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)

	switch {
	case err != nil && errors.Is(err, gorm.ErrRecordNotFound):
	case err != nil && isConstraintViolation(err) && l.level >= logger.Warn:
		attrs := append(queryAttrs(sqlAndRowsFn, elapsed), slog.String("error", err.Error()))
		l.log(ctx).LogAttrs(ctx, slog.LevelWarn, "GORM constraint violation", attrs...)

		return
	case err != nil && l.level >= logger.Error:
		attrs := append(queryAttrs(sqlAndRowsFn, elapsed), slog.String("error", err.Error()))
		l.log(ctx).LogAttrs(ctx, slog.LevelError, "GORM query failed", attrs...)

		return
	}

	if l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn {
		attrs := append(queryAttrs(sqlAndRowsFn, elapsed), slog.Duration("slow_threshold", l.slowThreshold))
		l.log(ctx).LogAttrs(ctx, slog.LevelWarn, "GORM slow query", attrs...)

		return
	}

	if l.level >= logger.Info {
		l.log(ctx).LogAttrs(ctx, slog.LevelDebug, "GORM query", queryAttrs(sqlAndRowsFn, elapsed)...)
	}
}

func (l *gormSlogLogger) log(ctx context.Context) *slog.Logger {
	if reqLogger := deliverycontext.GetLogger(ctx); reqLogger != nil {
		return reqLogger.With(slog.String("component", "gorm"))
	}

	return l.logger
}

func queryAttrs(sqlAndRowsFn func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := sqlAndRowsFn()

	return []slog.Attr{
		slog.String("operation", sqlOperation(sql)),
		slog.Bool("rating_aggregate", strings.Contains(strings.ToUpper(sql), "AVG(")),
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
}

// sqlOperation returns the lower-cased leading keyword of a statement, e.g. "select".
func sqlOperation(sql string) string {
	fields := strings.Fields(sql)
	if len(fields) == 0 {
		return ""
	}

	return strings.ToLower(fields[0])
}

func isConstraintViolation(err error) bool {
	return isUniqueConstraintViolation(err) || isForeignKeyConstraintViolation(err) || isCheckConstraintViolation(err)
}
