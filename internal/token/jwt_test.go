package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_AccessTokenRoundTrip(t *testing.T) {
	manager := NewJWT("test-secret")
	userID := uuid.New()

	tokenString, err := manager.GenerateAccessToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	parsedID, err := manager.ParseAccessToken(tokenString)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestJWT_ParseAccessToken_WrongSecret(t *testing.T) {
	tokenString, err := NewJWT("test-secret").GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = NewJWT("other-secret").ParseAccessToken(tokenString)
	assert.Error(t, err)
}

func TestJWT_ParseAccessToken_Garbage(t *testing.T) {
	_, err := NewJWT("test-secret").ParseAccessToken("not-a-token")
	assert.Error(t, err)
}

func TestJWT_ParseAccessToken_Expired(t *testing.T) {
	userID := uuid.New()
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-24 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-12 * time.Hour)),
		},
		UserID:    userID,
		TokenType: typeAccess,
	})
	tokenString, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = NewJWT("test-secret").ParseAccessToken(tokenString)
	assert.Error(t, err)
}

func TestJWT_ParseAccessToken_WrongType(t *testing.T) {
	userID := uuid.New()
	refresh := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID:    userID,
		TokenType: "refresh",
	})
	tokenString, err := refresh.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = NewJWT("test-secret").ParseAccessToken(tokenString)
	assert.Error(t, err)
}
