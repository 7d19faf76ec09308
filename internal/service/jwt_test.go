package service

import (
	"testing"
	"time"

	apperrors "github.com/findme-ke/findme-api/internal/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTService_RoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	token, err := svc.GenerateToken(42, "user@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	// sign with a negative lifetime so the token is already expired
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": 42,
		"email":   "user@example.com",
		"exp":     now.Add(-time.Minute).Unix(),
		"iat":     now.Add(-time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	svc := NewJWTService("test-secret", time.Hour)
	_, err = svc.ValidateToken(signed)
	require.ErrorIs(t, err, apperrors.ErrTokenExpired)
}

func TestJWTService_MalformedToken(t *testing.T) {
	svc := NewJWTService("test-secret", time.Hour)

	_, err := svc.ValidateToken("not-a-token")
	require.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestJWTService_WrongKey(t *testing.T) {
	issuer := NewJWTService("issuer-secret", time.Hour)
	verifier := NewJWTService("other-secret", time.Hour)

	token, err := issuer.GenerateToken(7, "user@example.com")
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	require.ErrorIs(t, err, apperrors.ErrInvalidToken)
}

func TestJWTService_DefaultTTL(t *testing.T) {
	svc := NewJWTService("test-secret", 0)

	token, err := svc.GenerateToken(1, "user@example.com")
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	require.NoError(t, err)
}
