package token

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cookbase/auth/pkg/user"
)

func testUser() user.User {
	return user.User{
		Name:     "Alice Smith",
		Username: "alice",
		Email:    "alice@example.com",
		Role:     user.RoleUser,
	}
}

func TestNewService(t *testing.T) {
	_, err := NewService("", "iss", "aud", time.Hour)
	assert.Error(t, err, "empty secret must be rejected at startup")

	svc, err := NewService("secret", "iss", "aud", 0)
	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestCreateToken(t *testing.T) {
	svc, err := NewService("test-secret", "test-issuer", "test-audience", time.Hour)
	require.NoError(t, err)

	t.Run("ClaimsRoundTrip", func(t *testing.T) {
		tokenStr, err := svc.CreateToken(testUser())
		require.NoError(t, err)
		assert.Len(t, strings.Split(tokenStr, "."), 3, "compact JWT has three segments")

		claims, err := svc.ParseToken(tokenStr)
		require.NoError(t, err)
		assert.Equal(t, "alice", claims.Name, "name claim carries the username")
		assert.Equal(t, "alice@example.com", claims.Email)
		assert.Equal(t, "User", claims.Role)
		assert.Equal(t, "test-issuer", claims.Issuer)
		assert.Contains(t, claims.Audience, "test-audience")
		assert.NotEmpty(t, claims.ID)
		require.NotNil(t, claims.ExpiresAt)
		assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
	})

	t.Run("SignedWithHS512", func(t *testing.T) {
		tokenStr, err := svc.CreateToken(testUser())
		require.NoError(t, err)

		parsed, _, err := jwt.NewParser().ParseUnverified(tokenStr, &Claims{})
		require.NoError(t, err)
		assert.Equal(t, jwt.SigningMethodHS512.Alg(), parsed.Method.Alg())
	})

	t.Run("TokensNeverRepeat", func(t *testing.T) {
		first, err := svc.CreateToken(testUser())
		require.NoError(t, err)
		second, err := svc.CreateToken(testUser())
		require.NoError(t, err)
		assert.NotEqual(t, first, second, "fresh jti per call")
	})
}

func TestParseTokenRejects(t *testing.T) {
	svc, err := NewService("test-secret", "test-issuer", "test-audience", time.Hour)
	require.NoError(t, err)

	tokenStr, err := svc.CreateToken(testUser())
	require.NoError(t, err)

	t.Run("WrongSecret", func(t *testing.T) {
		other, err := NewService("other-secret", "test-issuer", "test-audience", time.Hour)
		require.NoError(t, err)
		_, err = other.ParseToken(tokenStr)
		assert.Error(t, err)
	})

	t.Run("WrongIssuer", func(t *testing.T) {
		other, err := NewService("test-secret", "other-issuer", "test-audience", time.Hour)
		require.NoError(t, err)
		_, err = other.ParseToken(tokenStr)
		assert.Error(t, err)
	})

	t.Run("WrongAudience", func(t *testing.T) {
		other, err := NewService("test-secret", "test-issuer", "other-audience", time.Hour)
		require.NoError(t, err)
		_, err = other.ParseToken(tokenStr)
		assert.Error(t, err)
	})

	t.Run("Expired", func(t *testing.T) {
		now := time.Now().UTC()
		expired := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
			Name: "alice",
			Role: "User",
			RegisteredClaims: jwt.RegisteredClaims{
				Issuer:    "test-issuer",
				Audience:  jwt.ClaimStrings{"test-audience"},
				IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
				ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
			},
		})
		tokenStr, err := expired.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = svc.ParseToken(tokenStr)
		assert.Error(t, err, "expired tokens must not verify")
	})
}
