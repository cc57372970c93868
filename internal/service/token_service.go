package service

import (
	"fmt"
	"time"

	"github.com/falconakhil/CompeteHub/config"
	"github.com/golang-jwt/jwt/v5"
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 14 * 24 * time.Hour
)

type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

type TokenService interface {
	GenerateTokens(userID uint, username string) (access string, refresh string, err error)
	ValidateToken(tokenString string) (*Claims, error)
}

type tokenService struct {
	secret []byte
}

func NewTokenService(cfg *config.Config) TokenService {
	return &tokenService{secret: []byte(cfg.JWTSecret)}
}

func (s *tokenService) GenerateTokens(userID uint, username string) (string, string, error) {
	access, err := s.sign(userID, username, accessTokenTTL)
	if err != nil {
		return "", "", fmt.Errorf("failed to create access token: %w", err)
	}
	refresh, err := s.sign(userID, username, refreshTokenTTL)
	if err != nil {
		return "", "", fmt.Errorf("failed to create refresh token: %w", err)
	}
	return access, refresh, nil
}

func (s *tokenService) sign(userID uint, username string, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID:   userID,
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *tokenService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}
