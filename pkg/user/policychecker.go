package user

import (
	"fmt"
	"regexp"
)

// PasswordPolicy defines the requirements for password complexity
type PasswordPolicy struct {
	MinLength          int
	RequireUppercase   bool
	RequireLowercase   bool
	RequireDigit       bool
	RequireSpecialChar bool
}

// DefaultPasswordPolicy returns the policy applied to new passwords unless
// configured otherwise.
func DefaultPasswordPolicy() *PasswordPolicy {
	return &PasswordPolicy{
		MinLength:          8,
		RequireUppercase:   true,
		RequireLowercase:   true,
		RequireDigit:       true,
		RequireSpecialChar: true,
	}
}

// PasswordPolicyChecker defines the interface for checking password complexity
type PasswordPolicyChecker interface {
	// CheckPasswordComplexity returns one message per violated requirement,
	// or nil when the password satisfies the policy.
	CheckPasswordComplexity(password string) []string
	GetPolicy() *PasswordPolicy
}

var (
	uppercaseRx = regexp.MustCompile(`[A-Z]`)
	lowercaseRx = regexp.MustCompile(`[a-z]`)
	digitRx     = regexp.MustCompile(`[0-9]`)
	specialRx   = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// DefaultPasswordPolicyChecker implements the PasswordPolicyChecker interface
type DefaultPasswordPolicyChecker struct {
	policy *PasswordPolicy
}

// NewDefaultPasswordPolicyChecker creates a new default password policy checker
func NewDefaultPasswordPolicyChecker(policy *PasswordPolicy) *DefaultPasswordPolicyChecker {
	if policy == nil {
		policy = DefaultPasswordPolicy()
	}

	return &DefaultPasswordPolicyChecker{policy: policy}
}

// CheckPasswordComplexity verifies that a password meets the complexity requirements
func (pc *DefaultPasswordPolicyChecker) CheckPasswordComplexity(password string) []string {
	var violations []string

	if len(password) < pc.policy.MinLength {
		violations = append(violations, fmt.Sprintf("Password must be at least %d characters long.", pc.policy.MinLength))
	}

	if pc.policy.RequireUppercase && !uppercaseRx.MatchString(password) {
		violations = append(violations, "Password must contain at least one uppercase letter.")
	}

	if pc.policy.RequireLowercase && !lowercaseRx.MatchString(password) {
		violations = append(violations, "Password must contain at least one lowercase letter.")
	}

	if pc.policy.RequireDigit && !digitRx.MatchString(password) {
		violations = append(violations, "Password must contain at least one digit.")
	}

	if pc.policy.RequireSpecialChar && !specialRx.MatchString(password) {
		violations = append(violations, "Password must contain at least one special character.")
	}

	return violations
}

// GetPolicy returns the policy used by this checker.
func (pc *DefaultPasswordPolicyChecker) GetPolicy() *PasswordPolicy {
	return pc.policy
}
