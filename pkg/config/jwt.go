package config

import (
	"errors"
	"time"
)

// JwtConfig holds the token signing parameters.
type JwtConfig struct {
	Secret   string        `env:"JWT_SECRET" env-default:""`
	Issuer   string        `env:"JWT_ISSUER" env-default:"cookbase-auth"`
	Audience string        `env:"JWT_AUDIENCE" env-default:"cookbase"`
	Expiry   time.Duration `env:"JWT_EXPIRY" env-default:"24h"`
}

// Validate ensures a signing secret is configured. A missing secret is fatal
// at startup, never discovered at issue time.
func (c JwtConfig) Validate() error {
	if c.Secret == "" {
		return errors.New("JWT_SECRET is required")
	}
	return nil
}
