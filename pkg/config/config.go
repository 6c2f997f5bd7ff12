// Package config binds the service configuration from the environment and
// validates it at startup. Anything required but missing fails fast before
// the first request is served.
package config

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/tendant/chi-demo/app"
)

// Config is the full service configuration.
type Config struct {
	Database       DatabaseConfig
	Jwt            JwtConfig
	Api            ApiConfig
	Admin          AdminConfig
	PasswordPolicy PasswordPolicyConfig
	AppConfig      app.AppConfig
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	cfg := Config{}
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate runs every section's validation.
func (c Config) Validate() error {
	if err := c.Database.Validate(); err != nil {
		return fmt.Errorf("database config: %w", err)
	}
	if err := c.Jwt.Validate(); err != nil {
		return fmt.Errorf("jwt config: %w", err)
	}
	if err := c.Api.Validate(); err != nil {
		return fmt.Errorf("api config: %w", err)
	}
	if err := c.Admin.Validate(); err != nil {
		return fmt.Errorf("admin config: %w", err)
	}
	return nil
}
