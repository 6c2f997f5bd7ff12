package config

import (
	"errors"
	"fmt"
)

// DatabaseConfig selects and describes the credential store backing.
type DatabaseConfig struct {
	UseInMemory bool   `env:"DATABASE_USE_IN_MEMORY" env-default:"false"`
	Host        string `env:"DATABASE_HOST" env-default:"localhost"`
	Port        uint16 `env:"DATABASE_PORT" env-default:"5432"`
	Name        string `env:"DATABASE_NAME" env-default:"auth_db"`
	User        string `env:"DATABASE_USER" env-default:"auth"`
	Password    string `env:"DATABASE_PASSWORD" env-default:""`
}

// URL builds the postgres connection string.
func (c DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

// Validate checks the fields required for the selected mode.
func (c DatabaseConfig) Validate() error {
	if c.UseInMemory {
		return nil
	}
	if c.Host == "" {
		return errors.New("DATABASE_HOST is required when not using the in-memory store")
	}
	if c.Name == "" {
		return errors.New("DATABASE_NAME is required when not using the in-memory store")
	}
	return nil
}
