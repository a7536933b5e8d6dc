package services

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AdminService authenticates the admin API: a shared secret is exchanged for
// a short-lived session token at login.
type AdminService struct {
	secret []byte
	expiry time.Duration
}

type AdminToken struct {
	AccessToken string
	ExpiresIn   int64
}

func NewAdminService(secret string, expiry time.Duration) *AdminService {
	return &AdminService{
		secret: []byte(secret),
		expiry: expiry,
	}
}

// CheckSecret compares a login attempt against the configured shared secret
// in constant time.
func (s *AdminService) CheckSecret(candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(candidate), s.secret) == 1
}

func (s *AdminService) GenerateToken() (*AdminToken, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		Issuer:    "zeus-api",
		Subject:   "admin",
		ID:        uuid.New().String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign admin token: %w", err)
	}

	return &AdminToken{
		AccessToken: tokenString,
		ExpiresIn:   int64(s.expiry.Seconds()),
	}, nil
}

func (s *AdminService) ValidateToken(tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return fmt.Errorf("invalid token")
	}

	if claims.Subject != "admin" {
		return fmt.Errorf("invalid token subject")
	}

	return nil
}
