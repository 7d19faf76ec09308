package service

import (
	"errors"
	"time"

	apperrors "github.com/findme-ke/findme-api/internal/errors"
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims are the resolved identity claims carried by a bearer token
type TokenClaims struct {
	UserID uint
	Email  string
}

type JWTService struct {
	secretKey string
	ttl       time.Duration
}

func NewJWTService(secretKey string, ttl time.Duration) *JWTService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTService{
		secretKey: secretKey,
		ttl:       ttl,
	}
}

// GenerateToken creates a signed token embedding the subject, email and an
// absolute expiry of now + ttl
func (s *JWTService) GenerateToken(userID uint, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     now.Add(s.ttl).Unix(),
		"iat":     now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.secretKey))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// ValidateToken verifies signature then expiry and returns the identity
// claims. Expired-but-well-formed tokens report ErrTokenExpired so callers
// can tell "log in again" apart from a corrupt or forged token
// (ErrInvalidToken).
func (s *JWTService) ValidateToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.secretKey), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.WrapError(apperrors.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, apperrors.ErrInvalidToken
	}

	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return nil, apperrors.ErrInvalidToken
	}

	email, _ := claims["email"].(string)

	return &TokenClaims{
		UserID: uint(userIDFloat),
		Email:  email,
	}, nil
}
