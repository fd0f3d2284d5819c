package auth

import (
	"testing"
	"time"

	"pethub/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testJWTConfig(access, refresh string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = access
	cfg.SecretKey.Refresh = refresh

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig(
		"test_access_secret_key_very_long_for_testing",
		"test_refresh_secret_key_very_long_for_testing",
	))
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	userID := uuid.New()
	roles := []string{"individual"}

	accessToken, refreshToken, err := jwtService.GenerateTokens(userID, roles)
	assert.NoError(t, err)
	assert.NotEmpty(t, accessToken)
	assert.NotEmpty(t, refreshToken)

	// Validate access token
	accessClaims, err := jwtService.ValidateAccessToken(accessToken)
	assert.NoError(t, err)
	assert.NotNil(t, accessClaims)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, roles, accessClaims.Roles)
	assert.Equal(t, "access", accessClaims.Type)

	// Validate refresh token
	refreshClaims, err := jwtService.ValidateRefreshToken(refreshToken)
	assert.NoError(t, err)
	assert.NotNil(t, refreshClaims)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Nil(t, refreshClaims.Roles) // Refresh tokens don't carry roles
	assert.Equal(t, "refresh", refreshClaims.Type)
}

func TestJWTService_TokenTypeMismatch(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig(
		"shared_secret_key_very_long_for_testing",
		"shared_secret_key_very_long_for_testing",
	))
	assert.NoError(t, err)

	userID := uuid.New()
	accessToken, refreshToken, err := jwtService.GenerateTokens(userID, []string{"individual"})
	assert.NoError(t, err)

	// With identical secrets the signature verifies, so the type check has to reject.
	claims, err := jwtService.ValidateAccessToken(refreshToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "unexpected token type")

	claims, err = jwtService.ValidateRefreshToken(accessToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig(
		"test_access_secret_key_very_long_for_testing",
		"test_refresh_secret_key_very_long_for_testing",
	))
	assert.NoError(t, err)

	claims, err := jwtService.ValidateAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
	assert.Contains(t, err.Error(), "failed to parse token")
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer, err := NewJWTService(testJWTConfig(
		"issuer_access_secret_key_very_long_for_testing",
		"issuer_refresh_secret_key_very_long_for_testing",
	))
	assert.NoError(t, err)

	verifier, err := NewJWTService(testJWTConfig(
		"different_access_secret_key_very_long_for_testing",
		"different_refresh_secret_key_very_long_for_testing",
	))
	assert.NoError(t, err)

	accessToken, _, err := issuer.GenerateTokens(uuid.New(), nil)
	assert.NoError(t, err)

	claims, err := verifier.ValidateAccessToken(accessToken)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecrets(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig("", ""))
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secrets must be provided")
}

func TestJWTService_GetRefreshTokenDuration(t *testing.T) {
	jwtService, err := NewJWTService(testJWTConfig(
		"test_access_secret_key_very_long_for_testing",
		"test_refresh_secret_key_very_long_for_testing",
	))
	assert.NoError(t, err)

	duration := jwtService.GetRefreshTokenDuration()
	assert.Equal(t, time.Hour*24*7, duration)
}
