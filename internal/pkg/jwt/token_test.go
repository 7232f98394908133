package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/piresc/fleettrack/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestConfig() models.JWTConfig {
	return models.JWTConfig{
		Secret:     "test-secret-key-for-jwt-signing",
		Expiration: time.Hour,
		Issuer:     "fleettrack-test",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := getTestConfig()

	token, expiresAt, err := GenerateToken("drv-42", RoleDriver, cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), expiresAt, 5)

	claims, err := ValidateToken(token, cfg.Secret)
	require.NoError(t, err)
	assert.Equal(t, "drv-42", claims.DriverID)
	assert.Equal(t, RoleDriver, claims.Role)
	assert.Equal(t, expiresAt, claims.ExpiresAt)
}

func TestGenerateToken_MissingSecret(t *testing.T) {
	cfg := getTestConfig()
	cfg.Secret = ""

	_, _, err := GenerateToken("drv-42", RoleDriver, cfg)
	assert.Error(t, err)
}

func TestValidateToken_Invalid(t *testing.T) {
	cfg := getTestConfig()
	valid, _, err := GenerateToken("drv-42", RoleDriver, cfg)
	require.NoError(t, err)

	expiredCfg := cfg
	expiredCfg.Expiration = -time.Minute
	expired, _, err := GenerateToken("drv-42", RoleDriver, expiredCfg)
	require.NoError(t, err)

	noSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(cfg.Secret))
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "drv-42",
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{name: "Wrong secret", token: valid, secret: "other-secret"},
		{name: "Expired", token: expired, secret: cfg.Secret},
		{name: "Missing subject", token: noSubject, secret: cfg.Secret},
		{name: "Unsigned", token: noneAlg, secret: cfg.Secret},
		{name: "Garbage", token: "not-a-token", secret: cfg.Secret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := ValidateToken(tt.token, tt.secret)
			assert.Nil(t, claims)
			assert.True(t, errors.Is(err, ErrInvalidToken))
		})
	}
}
