// Package bootstrap seeds the configured admin account at startup.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cookbase/auth/pkg/config"
	"github.com/cookbase/auth/pkg/user"
)

// SeedAdmin ensures the configured admin account exists. When an account
// with the configured username is already present the seed is skipped; the
// existing record is left untouched.
func SeedAdmin(ctx context.Context, svc *user.UserService, cfg config.AdminConfig) error {
	role, err := user.ParseRole(cfg.Role)
	if err != nil {
		return fmt.Errorf("invalid admin role: %w", err)
	}

	_, err = svc.FindByUsername(ctx, cfg.Username)
	if err == nil {
		slog.Info("Admin user already exists - skipping seed", "username", cfg.Username)
		return nil
	}
	if !errors.Is(err, user.ErrNotFound) {
		return fmt.Errorf("failed to check admin user: %w", err)
	}

	_, err = svc.Create(ctx, user.CreateUserParams{
		Name:     cfg.Name,
		Username: cfg.Username,
		Email:    cfg.Email,
		Password: cfg.Password,
		Role:     role,
	})
	if err != nil {
		return fmt.Errorf("failed to seed admin user: %w", err)
	}

	slog.Info("Seeded admin user", "username", cfg.Username, "role", role)
	return nil
}
