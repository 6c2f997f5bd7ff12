package user

import (
	"errors"
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

var (
	// Usernames are restricted to the characters accepted as login handles.
	usernameRx = regexp.MustCompile(`^[A-Za-z0-9\-._@+]+$`)
	// Display names must contain at least one non-whitespace character.
	nonBlankRx = regexp.MustCompile(`\S`)
)

// Validate checks the field constraints for account creation. The password is
// checked separately against the password policy.
func (p CreateUserParams) Validate() error {
	return validation.ValidateStruct(&p,
		nameRule(&p.Name),
		usernameRule(&p.Username),
		emailRule(&p.Email),
	)
}

// Validate checks the field constraints for a profile update.
func (p UpdateUserParams) Validate() error {
	return validation.ValidateStruct(&p,
		nameRule(&p.Name),
		usernameRule(&p.Username),
		emailRule(&p.Email),
	)
}

func nameRule(value *string) *validation.FieldRules {
	return validation.Field(value,
		validation.Required,
		validation.Length(1, 256),
		validation.Match(nonBlankRx).Error("must contain a non-whitespace character"),
	)
}

func usernameRule(value *string) *validation.FieldRules {
	return validation.Field(value,
		validation.Required,
		validation.Length(1, 256),
		validation.Match(usernameRx).Error("may only contain letters, digits and -._@+"),
	)
}

func emailRule(value *string) *validation.FieldRules {
	return validation.Field(value,
		validation.Required,
		validation.Length(1, 256),
		is.Email,
	)
}

// fieldErrorsFrom flattens an ozzo validation result into a FieldErrors map.
func fieldErrorsFrom(err error) FieldErrors {
	fe := FieldErrors{}
	var ves validation.Errors
	if errors.As(err, &ves) {
		for field, ferr := range ves {
			fe.Add(field, ferr.Error())
		}
		return fe
	}
	fe.Add("", err.Error())
	return fe
}
