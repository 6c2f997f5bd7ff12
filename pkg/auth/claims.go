package auth

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/cookbase/auth/pkg/user"
)

// ClaimSet is the verified identity attached to a request. It is derived once
// from the bearer token at the request boundary and passed down through the
// request context; handlers never re-parse the token.
type ClaimSet struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

func (c ClaimSet) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("name", c.Name),
		slog.String("role", c.Role),
	)
}

// IsAdmin reports whether the claim set satisfies the Admin policy.
func (c ClaimSet) IsAdmin() bool {
	return c.Role == user.RoleAdmin.String()
}

// contextKey is a value for use with context.WithValue. It's used as
// a pointer so it fits in an interface{} without allocation.
type contextKey struct {
	name string
}

func (k *contextKey) String() string {
	return "auth context value " + k.name
}

// ClaimSetKey locates the ClaimSet in a request context.
var ClaimSetKey = &contextKey{"ClaimSet"}

// FromContext returns the ClaimSet stored by ClaimSetMiddleware.
func FromContext(ctx context.Context) (ClaimSet, bool) {
	cs, ok := ctx.Value(ClaimSetKey).(ClaimSet)
	return cs, ok
}

// LoadFromMap decodes a claims map into c via a JSON round trip.
func LoadFromMap[T any](m map[string]interface{}, c *T) error {
	data, err := json.Marshal(m)
	if err == nil {
		err = json.Unmarshal(data, c)
	}
	return err
}
