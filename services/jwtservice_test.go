package services

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	signed, err := CreateAccessToken("u1", "user")
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "u1", claims["userId"])
	assert.Equal(t, "user", claims["role"])
	assert.Equal(t, "planboard", claims["iss"])
}

func TestRefreshTokenHashing(t *testing.T) {
	t.Setenv("JWT_REFRESH_SECRET_KEY", "refresh-secret")

	token, err := CreateRefreshToken("u1")
	require.NoError(t, err)

	hashed, err := HashRefreshToken(token)
	require.NoError(t, err)

	assert.NoError(t, CompareRefreshToken(hashed, token))
	assert.Error(t, CompareRefreshToken(hashed, token+"tampered"))
}
