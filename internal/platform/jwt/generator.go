// Package jwtmw provides JWT token issuing and the Gin middleware that
// enforces authentication and admin access on protected routes.
package jwtmw

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"gamestore_backend/internal/domain/entity"
)

// Generator issues signed JWT tokens for authenticated users.
type Generator struct {
	cfg Config
}

// NewGenerator creates a new Generator with the provided configuration.
func NewGenerator(cfg Config) *Generator {
	return &Generator{cfg: cfg}
}

// Issue creates a signed HS256 token for the given user.
// Claims: subject (user id), email, role, a unique jti, issuer, audience,
// and an expiry 24 hours from issuance.
func (g *Generator) Issue(userID, email string, role entity.Role) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   userID,
		"email": email,
		"role":  string(role),
		"jti":   uuid.NewString(),
		"iss":   g.cfg.Issuer,
		"aud":   g.cfg.Audience,
		"iat":   now.Unix(),
		"exp":   now.Add(g.cfg.Expiration).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(g.cfg.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
