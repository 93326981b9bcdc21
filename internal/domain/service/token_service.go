package service

import (
	"time"

	"storerating/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims carried by an access token.
type Claims struct {
	UserID int64       `json:"uid"`
	Role   entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken signs an access token for the given identity.
	GenerateToken(userID int64, role entity.Role) (string, error)

	// ValidateToken checks signature and expiry and returns the embedded claims.
	ValidateToken(tokenString string) (*Claims, error)

	// TokenTTL returns how long issued tokens stay valid.
	TokenTTL() time.Duration
}
