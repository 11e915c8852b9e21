package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"house-of-rahaa/config"
)

func setupTestConfig() {
	config.AppConfig = &config.Config{
		JWTSecret: "test-secret",
		JWTExpiry: "168h",
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	setupTestConfig()

	userID := "64f1b2a3c4d5e6f708091a0b"
	token, err := GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestTokenExpiryWindow(t *testing.T) {
	setupTestConfig()

	token, err := GenerateToken("user1")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)

	expected := time.Now().Add(168 * time.Hour)
	assert.WithinDuration(t, expected, claims.ExpiresAt.Time, time.Minute)
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	setupTestConfig()

	token, err := GenerateToken("user1")
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = ValidateToken(tampered)
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	setupTestConfig()

	claims := Claims{
		UserID: "user1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	setupTestConfig()

	claims := Claims{
		UserID: "user1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.AppConfig.JWTSecret))
	require.NoError(t, err)

	_, err = ValidateToken(token)
	assert.Error(t, err)
}
