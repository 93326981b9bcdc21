package middleware

import (
	"strings"

	deliverycontext "storerating/internal/delivery/context"
	"storerating/internal/domain/entity"
	domainerrors "storerating/internal/domain/errors"
	"storerating/internal/domain/service"
	"storerating/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	metrics  *metrics.Metrics
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, m *metrics.Metrics) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, metrics: m}
}

// Authenticate validates the bearer token and records the caller's identity.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			m.record("token", "missing")

			return domainerrors.ErrUnauthorized.WithDetails("authorization header is missing")
		}

		scheme, tokenString, found := strings.Cut(authHeader, " ")
		tokenString = strings.TrimSpace(tokenString)
		if !found || !strings.EqualFold(scheme, "Bearer") || tokenString == "" {
			m.record("token", "malformed")

			return domainerrors.ErrUnauthorized.WithDetails("authorization header must be a bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			m.record("token", "invalid")

			return domainerrors.ErrInvalidToken
		}

		deliverycontext.SetIdentity(c, claims.UserID, claims.Role)

		return next(c)
	}
}

// RequireRole only lets through callers whose role is one of roles.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) echo.MiddlewareFunc {
	allowed := entity.Roles(roles)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := deliverycontext.GetUserRole(c)
			if !ok {
				return domainerrors.ErrForbidden.WithDetails("role information missing")
			}

			if !allowed.Contains(role) {
				m.record("role", "forbidden")

				return domainerrors.ErrForbidden.WithDetails("requires one of " + strings.Join(allowed.ToStrings(), ", "))
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) record(action, outcome string) {
	if m.metrics != nil {
		m.metrics.AuthAttempt(action, outcome)
	}
}
