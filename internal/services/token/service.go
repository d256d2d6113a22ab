// Package token mints and validates the signed credentials carried by API
// clients. A credential always names an identity and display name; responses
// that expose a particular game carry a credential scoped to that game id,
// reissued on every such response.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"langman/internal/dependencies/clock"
	"langman/internal/model"
)

// Errors
var (
	ErrInvalidToken = errors.New("invalid or expired token")
)

// Identity is the validated content of a credential
type Identity struct {
	UserID model.UserID
	Name   string
	GameID model.GameID // empty unless the credential is game-scoped
}

// Claims is the JWT claim set for a credential
type Claims struct {
	Name   string `json:"name"`
	GameID string `json:"game_id,omitempty"`
	jwt.RegisteredClaims
}

// Service issues and validates HS256-signed credentials
type Service struct {
	secret        []byte
	clock         clock.Clock
	tokenDuration time.Duration
}

// Config holds configuration for the token service
type Config struct {
	TokenDuration time.Duration
}

// DefaultConfig returns default token configuration
func DefaultConfig() Config {
	return Config{
		TokenDuration: 24 * time.Hour,
	}
}

// New creates a new token service
func New(secret []byte, clk clock.Clock, cfg Config) *Service {
	if cfg.TokenDuration == 0 {
		cfg.TokenDuration = DefaultConfig().TokenDuration
	}
	return &Service{
		secret:        secret,
		clock:         clk,
		tokenDuration: cfg.TokenDuration,
	}
}

// Issue mints a credential for the given identity. A non-empty gameID
// scopes the credential to that game.
func (s *Service) Issue(userID model.UserID, name string, gameID model.GameID) (string, error) {
	now := s.clock.Now()

	claims := Claims{
		Name:   name,
		GameID: string(gameID),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   string(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Validate parses and verifies a credential, returning its identity
func (s *Service) Validate(tokenString string) (*Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, ErrInvalidToken
			}
			return s.secret, nil
		},
		jwt.WithTimeFunc(s.clock.Now),
	)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return &Identity{
		UserID: model.UserID(claims.Subject),
		Name:   claims.Name,
		GameID: model.GameID(claims.GameID),
	}, nil
}
