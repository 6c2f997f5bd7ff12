package user

import (
	"context"
	"fmt"
	"log/slog"
)

// UserService owns user persistence and password verification. All password
// material stays behind this service; callers only ever see the hash through
// the User record and never a plain-text password.
type UserService struct {
	repo   UserRepository
	hasher PasswordHasher
	policy PasswordPolicyChecker
}

// Option configures a UserService
type Option func(*UserService)

// WithPasswordHasher overrides the default bcrypt hasher
func WithPasswordHasher(h PasswordHasher) Option {
	return func(s *UserService) {
		s.hasher = h
	}
}

// WithPasswordPolicyChecker overrides the default password policy
func WithPasswordPolicyChecker(pc PasswordPolicyChecker) Option {
	return func(s *UserService) {
		s.policy = pc
	}
}

// NewUserService creates a new user service
func NewUserService(repo UserRepository, opts ...Option) *UserService {
	s := &UserService{
		repo:   repo,
		hasher: &BcryptHasher{},
		policy: NewDefaultPasswordPolicyChecker(nil),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FindByUsername retrieves a user by username
func (s *UserService) FindByUsername(ctx context.Context, username string) (User, error) {
	return s.repo.GetByUsername(ctx, username)
}

// FindByEmail retrieves a user by email
func (s *UserService) FindByEmail(ctx context.Context, email string) (User, error) {
	return s.repo.GetByEmail(ctx, email)
}

// FindAll retrieves all users
func (s *UserService) FindAll(ctx context.Context) ([]User, error) {
	return s.repo.ListAll(ctx)
}

// Create validates params, hashes the password and stores the new user.
// Field violations and password policy violations are reported together as a
// *ValidationError; uniqueness conflicts as ErrUsernameExists/ErrEmailExists.
func (s *UserService) Create(ctx context.Context, params CreateUserParams) (User, error) {
	fields := FieldErrors{}
	if err := params.Validate(); err != nil {
		fields.Merge(fieldErrorsFrom(err))
	}
	for _, violation := range s.policy.CheckPasswordComplexity(params.Password) {
		fields.Add("", violation)
	}
	if len(fields) > 0 {
		return User{}, &ValidationError{Fields: fields}
	}

	hash, err := s.hasher.Hash(params.Password)
	if err != nil {
		return User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	u, err := s.repo.Create(ctx, User{
		Name:         params.Name,
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: hash,
		Role:         params.Role,
	})
	if err != nil {
		return User{}, err
	}

	slog.Info("Created user", "username", u.Username, "role", u.Role)
	return u, nil
}

// Update validates params and overwrites the profile fields of u. The role
// and password hash are left untouched.
func (s *UserService) Update(ctx context.Context, u User, params UpdateUserParams) (User, error) {
	if err := params.Validate(); err != nil {
		return User{}, &ValidationError{Fields: fieldErrorsFrom(err)}
	}

	u.Name = params.Name
	u.Username = params.Username
	u.Email = params.Email

	return s.repo.Update(ctx, u)
}

// Delete removes the user record
func (s *UserService) Delete(ctx context.Context, u User) error {
	if err := s.repo.Delete(ctx, u.ID); err != nil {
		return err
	}
	slog.Info("Deleted user", "username", u.Username)
	return nil
}

// CheckPassword verifies a plain-text password against the stored hash.
// A verification failure of any kind reads as a non-match.
func (s *UserService) CheckPassword(u User, password string) bool {
	ok, err := s.hasher.Verify(password, u.PasswordHash)
	if err != nil {
		slog.Error("Failed verifying password", "username", u.Username, "error", err)
		return false
	}
	return ok
}

// ChangePassword re-verifies the old password, checks the new one against the
// password policy and stores the new hash. The old password not matching is
// reported as ErrPasswordMismatch.
func (s *UserService) ChangePassword(ctx context.Context, u User, oldPassword, newPassword string) error {
	if !s.CheckPassword(u, oldPassword) {
		return ErrPasswordMismatch
	}

	if violations := s.policy.CheckPasswordComplexity(newPassword); len(violations) > 0 {
		fields := FieldErrors{}
		for _, violation := range violations {
			fields.Add("", violation)
		}
		return &ValidationError{Fields: fields}
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	u.PasswordHash = hash
	if _, err := s.repo.Update(ctx, u); err != nil {
		return err
	}

	slog.Info("Changed password", "username", u.Username)
	return nil
}
