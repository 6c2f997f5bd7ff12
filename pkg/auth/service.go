package auth

import (
	"context"
	"errors"

	"github.com/cookbase/auth/pkg/token"
	"github.com/cookbase/auth/pkg/user"
)

// ErrInvalidCredentials is returned for both an unknown username and a wrong
// password, so a login response never reveals which of the two failed.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Service orchestrates login and registration.
type Service struct {
	users  *user.UserService
	tokens *token.Service
}

// NewService creates a new auth service
func NewService(users *user.UserService, tokens *token.Service) *Service {
	return &Service{
		users:  users,
		tokens: tokens,
	}
}

// Login verifies the credentials and issues an access token.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !s.users.CheckPassword(u, password) {
		return "", ErrInvalidCredentials
	}

	return s.tokens.CreateToken(u)
}

// Register creates a new account with the lowest-privilege role.
// Registration does not log the user in; no token is issued.
func (s *Service) Register(ctx context.Context, params user.CreateUserParams) error {
	params.Role = user.RoleNone
	_, err := s.users.Create(ctx, params)
	return err
}

// ConflictFields translates a creation or update failure into the
// field-scoped messages surfaced to clients. The second return is false for
// errors that are not validation failures or uniqueness conflicts.
func ConflictFields(err error) (user.FieldErrors, bool) {
	if ve, ok := user.AsValidationError(err); ok {
		return ve.Fields, true
	}

	fields := user.FieldErrors{}
	switch {
	case errors.Is(err, user.ErrUsernameExists):
		fields.Add("username", "Username is already taken.")
	case errors.Is(err, user.ErrEmailExists):
		fields.Add("email", "Email is already taken.")
	default:
		return nil, false
	}
	return fields, true
}
