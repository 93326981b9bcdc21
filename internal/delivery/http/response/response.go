// Package response renders JSON bodies for the HTTP delivery.
package response

import (
	"net/http"

	deliverycontext "storerating/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message   string `json:"message"`          // User-friendly error message
	Code      string `json:"code"`             // Machine-readable error code, e.g. "VALIDATION_FAILED"
	Errors    any    `json:"errors,omitempty"` // Field errors of a failed validation
	RequestID string `json:"request_id,omitempty"`
}

// MessageResponse is a body that only carries a message.
type MessageResponse struct {
	Message string `json:"message"`
}

// Success writes body as JSON.
func Success(c echo.Context, statusCode int, body any) error {
	return c.JSON(statusCode, body)
}

// Message writes {"message": message}.
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, MessageResponse{Message: message})
}

// Error returns an error response. errs is dropped for 5xx responses.
func Error(c echo.Context, statusCode int, errorCode string, message string, errs any) error {
	if statusCode >= http.StatusInternalServerError {
		errs = nil
	}
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorResponse{
		Message:   message,
		Code:      errorCode,
		Errors:    errs,
		RequestID: deliverycontext.GetRequestID(c),
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// Unauthorized returns a 401 error
func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

// Forbidden returns a 403 error
func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}
