package user

import "errors"

// Common errors
var (
	ErrNotFound         = errors.New("user not found")
	ErrUsernameExists   = errors.New("username already exists")
	ErrEmailExists      = errors.New("email already exists")
	ErrPasswordMismatch = errors.New("password does not match")
)

// FieldErrors collects validation messages keyed by field name. Errors not
// tied to a particular field are stored under the empty key.
type FieldErrors map[string][]string

// Add appends a message for the given field.
func (fe FieldErrors) Add(field, message string) {
	fe[field] = append(fe[field], message)
}

// Merge copies all messages from other into fe.
func (fe FieldErrors) Merge(other FieldErrors) {
	for field, messages := range other {
		fe[field] = append(fe[field], messages...)
	}
}

// ValidationError is returned when input fails field or password validation.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// AsValidationError returns the wrapped *ValidationError, if any.
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
