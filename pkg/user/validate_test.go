package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCreateParams() CreateUserParams {
	return CreateUserParams{
		Name:     "Alice Smith",
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Password1!",
		Role:     RoleNone,
	}
}

func TestCreateUserParamsValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, validCreateParams().Validate())
	})

	t.Run("UsernameWithAllowedSpecials", func(t *testing.T) {
		params := validCreateParams()
		params.Username = "a-b.c_d@e+f"
		assert.NoError(t, params.Validate())
	})

	tests := []struct {
		name     string
		mutate   func(*CreateUserParams)
		wantKey  string
	}{
		{"MissingName", func(p *CreateUserParams) { p.Name = "" }, "name"},
		{"BlankName", func(p *CreateUserParams) { p.Name = "   " }, "name"},
		{"NameTooLong", func(p *CreateUserParams) { p.Name = strings.Repeat("a", 257) }, "name"},
		{"MissingUsername", func(p *CreateUserParams) { p.Username = "" }, "username"},
		{"UsernameBadCharset", func(p *CreateUserParams) { p.Username = "bad user!" }, "username"},
		{"UsernameTooLong", func(p *CreateUserParams) { p.Username = strings.Repeat("a", 257) }, "username"},
		{"MissingEmail", func(p *CreateUserParams) { p.Email = "" }, "email"},
		{"InvalidEmail", func(p *CreateUserParams) { p.Email = "not-an-email" }, "email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validCreateParams()
			tt.mutate(&params)

			err := params.Validate()
			require.Error(t, err)

			fields := fieldErrorsFrom(err)
			assert.Contains(t, fields, tt.wantKey)
		})
	}
}

func TestUpdateUserParamsValidate(t *testing.T) {
	params := UpdateUserParams{
		Name:     "Alice Smith",
		Username: "alice",
		Email:    "alice@example.com",
	}
	assert.NoError(t, params.Validate())

	params.Email = "nope"
	err := params.Validate()
	require.Error(t, err)
	assert.Contains(t, fieldErrorsFrom(err), "email")
}

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"None", "User", "Admin"} {
		role, err := ParseRole(valid)
		assert.NoError(t, err)
		assert.Equal(t, valid, role.String())
	}

	_, err := ParseRole("SuperAdmin")
	assert.Error(t, err)
}
