package auth

import (
	"testing"
	"time"

	"storerating/config"
	"storerating/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_access_secret_key_very_long_for_testing"

func newTestJWTConfig(ttl time.Duration) *config.Config {
	return &config.Config{
		SecretKey: config.SecretKeyConfig{Access: testSecret},
		Auth:      &config.AuthConfig{TokenTTL: ttl},
	}
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(time.Hour))
	require.NoError(t, err)

	token, err := jwtService.GenerateToken(42, entity.RoleStoreOwner)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, entity.RoleStoreOwner, claims.Role)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(time.Hour))
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_RejectsForeignSignature(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(time.Hour))
	require.NoError(t, err)

	other, err := NewJWTService(&config.Config{SecretKey: config.SecretKeyConfig{Access: "another-secret"}})
	require.NoError(t, err)

	token, err := other.GenerateToken(1, entity.RoleNormalUser)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsExpiredToken(t *testing.T) {
	svc, err := NewJWTService(newTestJWTConfig(time.Minute))
	require.NoError(t, err)

	impl, ok := svc.(*jwtService)
	require.True(t, ok)
	impl.now = func() time.Time { return time.Now().Add(-time.Hour) }

	token, err := impl.GenerateToken(1, entity.RoleNormalUser)
	require.NoError(t, err)

	impl.now = time.Now
	_, err = impl.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsUnknownRole(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(time.Hour))
	require.NoError(t, err)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":  7,
		"role": "superuser",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	token, err := forged.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_EmptySecret(t *testing.T) {
	jwtService, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_TokenTTL(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig(0))
	require.NoError(t, err)
	assert.Equal(t, defaultTokenTTL, jwtService.TokenTTL())

	jwtService, err = NewJWTService(newTestJWTConfig(2 * time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2*time.Hour, jwtService.TokenTTL())
}
