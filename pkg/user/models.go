package user

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Role is the privilege level of a user account.
type Role string

const (
	RoleNone  Role = "None"
	RoleUser  Role = "User"
	RoleAdmin Role = "Admin"
)

// ParseRole converts a role string into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleNone, RoleUser, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role: %q", s)
}

func (r Role) String() string {
	return string(r)
}

// User represents a user account in the system.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateUserParams contains parameters for creating a new user
type CreateUserParams struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}

// UpdateUserParams contains parameters for updating a user's profile fields
type UpdateUserParams struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}
