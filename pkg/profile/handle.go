package profile

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/jinzhu/copier"

	"github.com/cookbase/auth/pkg/auth"
	"github.com/cookbase/auth/pkg/problem"
	"github.com/cookbase/auth/pkg/token"
	"github.com/cookbase/auth/pkg/user"
)

type Handle struct {
	users  *user.UserService
	tokens *token.Service
}

func NewHandle(users *user.UserService, tokens *token.Service) Handle {
	return Handle{
		users:  users,
		tokens: tokens,
	}
}

// Handler mounts the self-service routes. The caller wraps these in the
// authentication middleware; by the time a handler runs, a verified ClaimSet
// is in the request context.
func Handler(h Handle) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.GetMe)
	r.Put("/", h.UpdateMe)
	r.Put("/Password", h.UpdatePassword)
	r.Delete("/", h.DeleteMe)
	return r
}

type UserResponse struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type UpdateRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

type UpdateResponse struct {
	AccessToken string `json:"accessToken"`
}

type PasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// claimFields checks that the claims every token issued by this service
// carries are actually present. A verified token missing any of them is
// malformed and reported per claim.
func claimFields(cs auth.ClaimSet) user.FieldErrors {
	fields := user.FieldErrors{}
	if cs.Name == "" {
		fields.Add("name", "Invalid token with no name is given.")
	}
	if cs.Email == "" {
		fields.Add("email", "Invalid token with no email is given.")
	}
	if cs.Role == "" {
		fields.Add("role", "Invalid token with no role is given.")
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// currentUser resolves the authenticated principal, writing the error
// response itself when the claims are malformed or the record is gone.
func (h Handle) currentUser(w http.ResponseWriter, r *http.Request) (user.User, bool) {
	cs, ok := auth.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return user.User{}, false
	}

	if fields := claimFields(cs); fields != nil {
		problem.RenderValidation(w, r, fields)
		return user.User{}, false
	}

	u, err := h.users.FindByUsername(r.Context(), cs.Name)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			problem.Render(w, r, http.StatusNotFound, "User not found", "Invalid token with no user found.")
			return user.User{}, false
		}
		slog.Error("Failed looking up current user", "claims", cs, "error", err)
		problem.Render(w, r, http.StatusInternalServerError, "Lookup failed", "")
		return user.User{}, false
	}
	return u, true
}

// GetMe returns the current user.
// (GET /User/Me)
func (h Handle) GetMe(w http.ResponseWriter, r *http.Request) {
	u, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	render.JSON(w, r, UserResponse{
		Name:     u.Name,
		Role:     u.Role.String(),
		Username: u.Username,
		Email:    u.Email,
	})
}

// UpdateMe overwrites the current user's profile fields and re-issues a
// token for the (possibly new) username.
// (PUT /User/Me)
func (h Handle) UpdateMe(w http.ResponseWriter, r *http.Request) {
	u, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.RenderValidation(w, r, map[string][]string{"": {"Invalid request body."}})
		return
	}

	params := user.UpdateUserParams{}
	if err := copier.Copy(&params, &req); err != nil {
		slog.Error("Failed copying update request", "error", err)
		problem.Render(w, r, http.StatusInternalServerError, "Update failed", "")
		return
	}

	updated, err := h.users.Update(r.Context(), u, params)
	if err != nil {
		if fields, ok := auth.ConflictFields(err); ok {
			problem.RenderValidation(w, r, fields)
			return
		}
		slog.Error("Failed updating user", "username", u.Username, "error", err)
		problem.RenderValidation(w, r, map[string][]string{"": {err.Error()}})
		return
	}

	// The old token still names the old handle; hand back one that matches.
	accessToken, err := h.tokens.CreateToken(updated)
	if err != nil {
		problem.Render(w, r, http.StatusInternalServerError, "Token issuance failed", "")
		return
	}

	render.JSON(w, r, UpdateResponse{AccessToken: accessToken})
}

// UpdatePassword changes the current user's password. Existing tokens stay
// valid; no new token is issued.
// (PUT /User/Me/Password)
func (h Handle) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	u, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	var req PasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.RenderValidation(w, r, map[string][]string{"": {"Invalid request body."}})
		return
	}

	if err := h.users.ChangePassword(r.Context(), u, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, user.ErrPasswordMismatch) {
			problem.RenderValidation(w, r, map[string][]string{"": {"Incorrect password."}})
			return
		}
		if ve, ok := user.AsValidationError(err); ok {
			problem.RenderValidation(w, r, ve.Fields)
			return
		}
		slog.Error("Failed changing password", "username", u.Username, "error", err)
		problem.RenderValidation(w, r, map[string][]string{"": {err.Error()}})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// DeleteMe removes the current user's account.
// (DELETE /User/Me)
func (h Handle) DeleteMe(w http.ResponseWriter, r *http.Request) {
	u, ok := h.currentUser(w, r)
	if !ok {
		return
	}

	if err := h.users.Delete(r.Context(), u); err != nil {
		slog.Error("Failed deleting user", "username", u.Username, "error", err)
		problem.RenderValidation(w, r, map[string][]string{"": {err.Error()}})
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
