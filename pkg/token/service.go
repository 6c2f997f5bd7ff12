package token

import (
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/cookbase/auth/pkg/user"
)

// DefaultExpiry is used when no expiry is configured.
const DefaultExpiry = 24 * time.Hour

// Claims is the claim set carried by issued access tokens.
type Claims struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Service issues signed access tokens for authenticated users.
type Service struct {
	secret   []byte
	issuer   string
	audience string
	expiry   time.Duration
}

// NewService creates a token issuer. An empty secret is a configuration
// error and is rejected here, at startup, rather than at issue time.
func NewService(secret, issuer, audience string, expiry time.Duration) (*Service, error) {
	if secret == "" {
		return nil, errors.New("token secret is required")
	}
	if expiry <= 0 {
		expiry = DefaultExpiry
	}
	return &Service{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		expiry:   expiry,
	}, nil
}

// CreateToken signs a token for u with HS512. The name claim carries the
// login username. The jti is fresh per call, so issuing twice for the same
// user never yields the same token.
func (s *Service) CreateToken(u user.User) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Name:  u.Username,
		Email: u.Email,
		Role:  u.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Audience:  jwt.ClaimStrings{s.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	ss, err := token.SignedString(s.secret)
	if err != nil {
		slog.Error("Failed signing token", "username", u.Username, "error", err)
		return "", err
	}
	return ss, nil
}

// ParseToken parses and validates a token issued by this service. It is used
// by tests and tooling; request verification goes through the jwtauth
// middleware in pkg/auth.
func (s *Service) ParseToken(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithAudience(s.audience),
	)
	if err != nil {
		return nil, err
	}
	return claims, nil
}
