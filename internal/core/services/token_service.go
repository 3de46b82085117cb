package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/postal/cards/internal/core/domain"
	"github.com/postal/cards/internal/core/ports"
)

// tokenClaims embeds the registered claims for exp/iat handling and
// carries the user identity on top.
type tokenClaims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Mail     string `json:"mail"`
	jwt.RegisteredClaims
}

type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret []byte, ttl time.Duration) ports.TokenService {
	return &TokenService{secret: secret, ttl: ttl}
}

func (s *TokenService) Issue(identity domain.Identity) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		UserID:   identity.ID,
		Username: identity.Username,
		Mail:     identity.Mail,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *TokenService) Verify(tokenString string) (*domain.Identity, error) {
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrInvalidToken
	}
	if !token.Valid || claims.UserID == "" {
		return nil, domain.ErrInvalidToken
	}

	return &domain.Identity{
		ID:       claims.UserID,
		Username: claims.Username,
		Mail:     claims.Mail,
	}, nil
}
