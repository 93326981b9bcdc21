package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthCheck handles GET /api/health.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":  "OK",
		"message": "Server is running",
	})
}
