package config

import (
	"errors"
	"fmt"
)

// ApiConfig describes the API surface for the metadata endpoint.
type ApiConfig struct {
	Title        string `env:"API_TITLE" env-default:"Cookbase Auth"`
	Description  string `env:"API_DESCRIPTION" env-default:"User account and authentication service"`
	MajorVersion int    `env:"API_MAJOR_VERSION" env-default:"1"`
	MinorVersion int    `env:"API_MINOR_VERSION" env-default:"0"`
}

// VersionString renders the version as v{major}.{minor}.
func (c ApiConfig) VersionString() string {
	return fmt.Sprintf("v%d.%d", c.MajorVersion, c.MinorVersion)
}

// Validate checks the version numbers.
func (c ApiConfig) Validate() error {
	if c.MajorVersion < 0 || c.MinorVersion < 0 {
		return errors.New("API version numbers must not be negative")
	}
	if c.MajorVersion == 0 && c.MinorVersion == 0 {
		return errors.New("API version must be greater than 0.0")
	}
	return nil
}
