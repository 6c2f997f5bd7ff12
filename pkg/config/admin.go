package config

import "fmt"

// AdminConfig describes the bootstrap admin account seeded at startup when
// its username does not yet exist.
type AdminConfig struct {
	Name     string `env:"ADMIN_NAME" env-default:"Administrator"`
	Username string `env:"ADMIN_USERNAME" env-default:""`
	Email    string `env:"ADMIN_EMAIL" env-default:""`
	Password string `env:"ADMIN_PASSWORD" env-default:""`
	Role     string `env:"ADMIN_ROLE" env-default:"Admin"`
}

// Validate requires the full credential set.
func (c AdminConfig) Validate() error {
	for key, value := range map[string]string{
		"ADMIN_USERNAME": c.Username,
		"ADMIN_EMAIL":    c.Email,
		"ADMIN_PASSWORD": c.Password,
	} {
		if value == "" {
			return fmt.Errorf("%s is required", key)
		}
	}
	return nil
}
