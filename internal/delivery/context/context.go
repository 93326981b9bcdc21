// Package context carries request-scoped values between middleware, handlers and use cases.
package context

import (
	"context"
	"log/slog"

	"storerating/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyLogger is the key for storing request-scoped logger in context.
	KeyLogger ContextKey = "logger"

	// KeyUserID holds the authenticated user id in echo.Context.
	KeyUserID ContextKey = "user_id"

	// KeyUserRole holds the authenticated user role in echo.Context.
	KeyUserRole ContextKey = "user_role"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID extracts the request ID from echo.Context.
// If not found, generates a new UUID.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns the request ID stored by WithRequestID, or "".
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger extracts the request-scoped logger from context.Context, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(KeyLogger).(*slog.Logger); ok {
		return logger
	}

	return nil
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when there is none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// SetIdentity records the authenticated caller on the echo context.
func SetIdentity(c echo.Context, userID int64, role entity.Role) {
	c.Set(string(KeyUserID), userID)
	c.Set(string(KeyUserRole), role)
}

// GetUserID returns the authenticated user id. ok is false on unauthenticated routes.
func GetUserID(c echo.Context) (int64, bool) {
	id, ok := c.Get(string(KeyUserID)).(int64)

	return id, ok && id > 0
}

// GetUserRole returns the authenticated user role.
func GetUserRole(c echo.Context) (entity.Role, bool) {
	role, ok := c.Get(string(KeyUserRole)).(entity.Role)

	return role, ok && role.IsValid()
}
