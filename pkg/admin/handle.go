// Package admin serves the Admin-only user listing.
package admin

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/cookbase/auth/pkg/user"
)

type Handle struct {
	users *user.UserService
}

func NewHandle(users *user.UserService) Handle {
	return Handle{users: users}
}

// Handler mounts the admin routes. The caller wraps these in the Admin
// policy middleware.
func Handler(h Handle) http.Handler {
	r := chi.NewRouter()
	r.Get("/Users", h.ListUsers)
	return r
}

type UserResponse struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ListUsers returns every user account. No pagination; the user population
// of this service is small.
// (GET /Admin/Users)
func (h Handle) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.FindAll(r.Context())
	if err != nil {
		slog.Error("Failed listing users", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	response := make([]UserResponse, 0, len(users))
	for _, u := range users {
		response = append(response, UserResponse{
			Name:     u.Name,
			Role:     u.Role.String(),
			Username: u.Username,
			Email:    u.Email,
		})
	}

	render.JSON(w, r, response)
}
