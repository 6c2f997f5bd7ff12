package config

// PasswordPolicyConfig tunes the password complexity requirements.
type PasswordPolicyConfig struct {
	RequiredLength     int  `env:"PASSWORD_POLICY_REQUIRED_LENGTH" env-default:"8"`
	RequireUppercase   bool `env:"PASSWORD_POLICY_REQUIRE_UPPERCASE" env-default:"true"`
	RequireLowercase   bool `env:"PASSWORD_POLICY_REQUIRE_LOWERCASE" env-default:"true"`
	RequireDigit       bool `env:"PASSWORD_POLICY_REQUIRE_DIGIT" env-default:"true"`
	RequireSpecialChar bool `env:"PASSWORD_POLICY_REQUIRE_NON_ALPHANUMERIC" env-default:"true"`
}
