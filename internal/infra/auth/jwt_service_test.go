package auth

import (
	"testing"
	"time"

	"proptrust/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateAccessToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	accountID := uuid.New()
	roles := []string{"owner", "admin"}

	accessToken, err := jwtService.GenerateAccessToken(accountID, roles)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	claims, err := jwtService.ValidateToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, accountID, claims.AccountID)
	assert.Equal(t, roles, claims.Roles)
	assert.NotNil(t, claims.ExpiresAt)
}

func TestJWTService_MissingSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token")
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(newTestConfig())
	require.NoError(t, err)

	other := newTestConfig()
	other.SecretKey.Access = "another_secret_key_that_does_not_match"
	verifier, err := NewJWTService(other)
	require.NoError(t, err)

	token, err := issuer.GenerateAccessToken(uuid.New(), []string{"owner"})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsNonAccessAndExpiredTokens(t *testing.T) {
	cfg := newTestConfig()
	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	sign := func(claims jwt.MapClaims) string {
		token, signErr := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.SecretKey.Access))
		require.NoError(t, signErr)

		return token
	}

	refresh := sign(jwt.MapClaims{
		"sub":  uuid.NewString(),
		"exp":  time.Now().Add(time.Hour).Unix(),
		"type": "refresh",
	})
	_, err = jwtService.ValidateToken(refresh)
	assert.Error(t, err)

	expired := sign(jwt.MapClaims{
		"sub":  uuid.NewString(),
		"exp":  time.Now().Add(-time.Hour).Unix(),
		"type": "access",
	})
	_, err = jwtService.ValidateToken(expired)
	assert.Error(t, err)

	noExpiry := sign(jwt.MapClaims{
		"sub":  uuid.NewString(),
		"type": "access",
	})
	_, err = jwtService.ValidateToken(noExpiry)
	assert.Error(t, err)
}
