package health

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

type Handle struct {
	service *Service
}

func NewHandle(service *Service) Handle {
	return Handle{service: service}
}

// Handler mounts the health route.
func Handler(h Handle) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Get)
	return r
}

// Get reports the health of the service and its components. Anything short
// of fully healthy is a 503 with the same body.
// (GET /Health)
func (h Handle) Get(w http.ResponseWriter, r *http.Request) {
	report := h.service.Check(r.Context())

	if report.Status != StatusHealthy {
		render.Status(r, http.StatusServiceUnavailable)
	}
	render.JSON(w, r, report)
}
