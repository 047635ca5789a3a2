package auth

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitJWTSecretRejectsEmpty(t *testing.T) {
	assert.Error(t, InitJWTSecret(""))
}

func TestGenerateAndVerifyJWT(t *testing.T) {
	require.NoError(t, InitJWTSecret("test-secret"))

	tokenString, err := GenerateJWT(42, "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	token, err := VerifyJWT(tokenString)
	require.NoError(t, err)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)

	assert.Equal(t, float64(42), claims["user_id"])
	assert.Equal(t, "user@example.com", claims["email"])
}

func TestVerifyJWTRejectsTampered(t *testing.T) {
	require.NoError(t, InitJWTSecret("test-secret"))

	tokenString, err := GenerateJWT(1, "user@example.com")
	require.NoError(t, err)

	_, err = VerifyJWT(tokenString + "x")
	assert.Error(t, err)
}

func TestVerifyJWTRejectsWrongSecret(t *testing.T) {
	require.NoError(t, InitJWTSecret("first-secret"))

	tokenString, err := GenerateJWT(1, "user@example.com")
	require.NoError(t, err)

	require.NoError(t, InitJWTSecret("second-secret"))

	_, err = VerifyJWT(tokenString)
	assert.Error(t, err)
}
