package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/jinzhu/copier"

	"github.com/cookbase/auth/pkg/problem"
	"github.com/cookbase/auth/pkg/user"
)

type Handle struct {
	service *Service
}

func NewHandle(service *Service) Handle {
	return Handle{service: service}
}

// Handler mounts the anonymous auth routes.
func Handler(h Handle) http.Handler {
	r := chi.NewRouter()
	r.Post("/Login", h.Login)
	r.Post("/Register", h.Register)
	return r
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string `json:"accessToken"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates a user and returns an access token.
// (POST /Auth/Login)
func (h Handle) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.RenderValidation(w, r, map[string][]string{"": {"Invalid request body."}})
		return
	}

	accessToken, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		// Unknown username and wrong password get the same bare 401.
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	render.JSON(w, r, LoginResponse{AccessToken: accessToken})
}

// Register creates a new user account.
// (POST /Auth/Register)
func (h Handle) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		problem.RenderValidation(w, r, map[string][]string{"": {"Invalid request body."}})
		return
	}

	params := user.CreateUserParams{}
	if err := copier.Copy(&params, &req); err != nil {
		slog.Error("Failed copying register request", "error", err)
		problem.Render(w, r, http.StatusInternalServerError, "Registration failed", "")
		return
	}

	if err := h.service.Register(r.Context(), params); err != nil {
		if fields, ok := ConflictFields(err); ok {
			problem.RenderValidation(w, r, fields)
			return
		}
		slog.Error("Failed registering user", "username", req.Username, "error", err)
		problem.RenderValidation(w, r, map[string][]string{"": {err.Error()}})
		return
	}

	w.WriteHeader(http.StatusCreated)
}
