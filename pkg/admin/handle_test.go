package admin_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cookbase/auth/pkg/admin"
	"github.com/cookbase/auth/pkg/auth"
	"github.com/cookbase/auth/pkg/token"
	"github.com/cookbase/auth/pkg/user"
)

const (
	testSecret   = "admin-test-secret"
	testIssuer   = "test-issuer"
	testAudience = "test-audience"
)

func newTestServer(t *testing.T) (http.Handler, *user.UserService, *token.Service) {
	t.Helper()

	users := user.NewUserService(user.NewInMemoryUserRepository())
	tokens, err := token.NewService(testSecret, testIssuer, testAudience, time.Hour)
	require.NoError(t, err)
	tokenAuth := auth.NewVerifier(testSecret, testIssuer, testAudience)

	r := chi.NewRouter()
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(tokenAuth))
		r.Use(auth.Authenticator(tokenAuth))
		r.Use(auth.ClaimSetMiddleware)
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAdmin)
			r.Mount("/Admin", admin.Handler(admin.NewHandle(users)))
		})
	})
	return r, users, tokens
}

func createUser(t *testing.T, users *user.UserService, username, email string, role user.Role) user.User {
	t.Helper()

	u, err := users.Create(context.Background(), user.CreateUserParams{
		Name:     "Test User",
		Username: username,
		Email:    email,
		Password: "Password1!",
		Role:     role,
	})
	require.NoError(t, err)
	return u
}

func TestListUsers(t *testing.T) {
	t.Run("AdminSeesEveryone", func(t *testing.T) {
		handler, users, tokens := newTestServer(t)
		createUser(t, users, "alice", "alice@example.com", user.RoleUser)
		boss := createUser(t, users, "boss", "boss@example.com", user.RoleAdmin)

		tok, err := tokens.CreateToken(boss)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/Admin/Users", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var resp []admin.UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 2)

		usernames := []string{resp[0].Username, resp[1].Username}
		assert.Contains(t, usernames, "alice")
		assert.Contains(t, usernames, "boss")
	})

	t.Run("NonAdminForbidden", func(t *testing.T) {
		handler, users, tokens := newTestServer(t)
		u := createUser(t, users, "alice", "alice@example.com", user.RoleUser)

		tok, err := tokens.CreateToken(u)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/Admin/Users", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("NoToken", func(t *testing.T) {
		handler, _, _ := newTestServer(t)

		req := httptest.NewRequest(http.MethodGet, "/Admin/Users", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
