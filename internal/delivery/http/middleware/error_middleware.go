package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "storerating/internal/delivery/context"
	"storerating/internal/delivery/http/response"
	"storerating/internal/delivery/http/validator"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var validationErr *validator.ValidationError
	if errors.As(err, &validationErr) {
		_ = response.Error(c, http.StatusBadRequest,
			domainerrors.ErrValidationFailed.ErrorCode(),
			domainerrors.ErrValidationFailed.Message(),
			validationErr.Fields,
		)

		return
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			m.log(c).Error("Request failed",
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
		}

		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nil)

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, httpErrorCode(httpErr.Code), message, nil)

		return
	}

	// Unknown errors are logged with the request id and answered with a generic message.
	m.log(c).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message())
}

func (m *ErrorMiddleware) log(c echo.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)
}

func httpErrorCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return domainerrors.ErrNotFound.ErrorCode()
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusRequestEntityTooLarge:
		return "PAYLOAD_TOO_LARGE"
	case http.StatusUnauthorized:
		return domainerrors.ErrUnauthorized.ErrorCode()
	case http.StatusForbidden:
		return domainerrors.ErrForbidden.ErrorCode()
	case http.StatusTooManyRequests:
		return domainerrors.ErrTooManyRequests.ErrorCode()
	}

	if status >= http.StatusInternalServerError {
		return domainerrors.ErrInternalError.ErrorCode()
	}

	return "HTTP_ERROR"
}
