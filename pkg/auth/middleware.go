package auth

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// NewVerifier builds the token verifier used by the request middleware.
// Signature, issuer and audience are all checked; expiry is validated by the
// underlying library whenever the exp claim is present.
func NewVerifier(secret, issuer, audience string) *jwtauth.JWTAuth {
	return jwtauth.New("HS512", []byte(secret), nil,
		jwt.WithIssuer(issuer),
		jwt.WithAudience(audience),
	)
}

// Authenticator rejects requests whose bearer token is missing or failed
// verification. The 401 is deliberately bare so the response does not reveal
// whether a token was absent, malformed or expired.
func Authenticator(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil || token == nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClaimSetMiddleware loads the verified claims into a ClaimSet and stores it
// in the request context. Individual claims being absent is not rejected
// here; handlers report that as a validation failure.
func ClaimSetMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, claims, err := jwtauth.FromContext(r.Context())
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		cs := ClaimSet{}
		if err := LoadFromMap(claims, &cs); err != nil {
			slog.Error("Failed loading claims", "error", err)
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), ClaimSetKey, cs)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin gates a route behind the Admin policy. A valid claim set with
// any other role gets a bare 403.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cs, ok := FromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if !cs.IsAdmin() {
			slog.Info("Admin policy rejected request", "claims", cs)
			w.WriteHeader(http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
