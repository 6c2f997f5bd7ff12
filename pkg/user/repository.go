package user

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence.
//
// Create and Update report uniqueness conflicts as ErrUsernameExists or
// ErrEmailExists so callers can attach the failure to the right field instead
// of inspecting driver error strings. Lookups report ErrNotFound for missing
// records.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ListAll(ctx context.Context) ([]User, error)
	Create(ctx context.Context, u User) (User, error)
	Update(ctx context.Context, u User) (User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
