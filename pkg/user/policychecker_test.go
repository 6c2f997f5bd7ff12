package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckPasswordComplexity(t *testing.T) {
	checker := NewDefaultPasswordPolicyChecker(nil)

	t.Run("ValidPassword", func(t *testing.T) {
		violations := checker.CheckPasswordComplexity("Password1!")
		assert.Empty(t, violations)
	})

	t.Run("TooShort", func(t *testing.T) {
		violations := checker.CheckPasswordComplexity("Pw1!")
		assert.Len(t, violations, 1)
		assert.Contains(t, violations[0], "at least 8 characters")
	})

	t.Run("MissingEverything", func(t *testing.T) {
		violations := checker.CheckPasswordComplexity("")
		// length, uppercase, lowercase, digit and special are all violated
		assert.Len(t, violations, 5)
	})

	t.Run("MissingDigit", func(t *testing.T) {
		violations := checker.CheckPasswordComplexity("Password!")
		assert.Len(t, violations, 1)
		assert.Contains(t, violations[0], "digit")
	})

	t.Run("MissingSpecialChar", func(t *testing.T) {
		violations := checker.CheckPasswordComplexity("Password1")
		assert.Len(t, violations, 1)
		assert.Contains(t, violations[0], "special character")
	})

	t.Run("RelaxedPolicy", func(t *testing.T) {
		relaxed := NewDefaultPasswordPolicyChecker(&PasswordPolicy{MinLength: 4})
		assert.Empty(t, relaxed.CheckPasswordComplexity("abcd"))
	})
}
