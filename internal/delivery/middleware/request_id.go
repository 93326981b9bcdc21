package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "storerating/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength caps client supplied request ids before they reach the logs.
const maxRequestIDLength = 128

// RequestIDMiddleware assigns every request an id and a logger that carries it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses the X-Request-Id header when it is usable and generates one otherwise.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := sanitizeRequestID(c.Request().Header.Get(deliverycontext.HeaderXRequestID))
		if requestID == "" {
			requestID = uuid.New().String()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(slog.String("request_id", requestID))

		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

func sanitizeRequestID(id string) string {
	id = strings.TrimSpace(id)
	if len(id) > maxRequestIDLength {
		return ""
	}

	for _, r := range id {
		if r < 0x21 || r > 0x7e {
			return ""
		}
	}

	return id
}
