package jwtmw

import (
	"errors"
	"os"
	"time"
)

// Environment variable names for the token configuration.
const (
	EnvKeyJWTSecret   = "JWT_SECRET"
	EnvKeyJWTIssuer   = "JWT_ISSUER"
	EnvKeyJWTAudience = "JWT_AUDIENCE"
)

// tokenTTL is how long an issued token stays valid.
const tokenTTL = 24 * time.Hour

// Config holds the settings for signing and verifying tokens.
type Config struct {
	Secret     string
	Issuer     string
	Audience   string
	Expiration time.Duration
}

// LoadConfig reads the token configuration from the environment.
// Secret, issuer and audience are all required; the server must refuse to
// start without them rather than issue unverifiable tokens.
func LoadConfig() (Config, error) {
	cfg := Config{
		Secret:     os.Getenv(EnvKeyJWTSecret),
		Issuer:     os.Getenv(EnvKeyJWTIssuer),
		Audience:   os.Getenv(EnvKeyJWTAudience),
		Expiration: tokenTTL,
	}
	if cfg.Secret == "" {
		return Config{}, errors.New("JWT_SECRET is not set")
	}
	if cfg.Issuer == "" {
		return Config{}, errors.New("JWT_ISSUER is not set")
	}
	if cfg.Audience == "" {
		return Config{}, errors.New("JWT_AUDIENCE is not set")
	}
	return cfg, nil
}
