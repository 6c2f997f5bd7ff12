// Package problem renders RFC 7807 style error bodies. Validation failures
// carry a field-to-messages map; messages not tied to a field sit under the
// empty key.
package problem

import (
	"net/http"

	"github.com/go-chi/render"
)

// Details is the generic problem body.
type Details struct {
	Title  string `json:"title,omitempty"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// ValidationDetails is the problem body for validation failures.
type ValidationDetails struct {
	Title  string              `json:"title"`
	Status int                 `json:"status"`
	Errors map[string][]string `json:"errors"`
}

// Render writes a generic problem body with the given status.
func Render(w http.ResponseWriter, r *http.Request, status int, title, detail string) {
	render.Status(r, status)
	render.JSON(w, r, Details{
		Title:  title,
		Status: status,
		Detail: detail,
	})
}

// RenderValidation writes a 400 with the field error map.
func RenderValidation(w http.ResponseWriter, r *http.Request, errors map[string][]string) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, ValidationDetails{
		Title:  "One or more validation errors occurred.",
		Status: http.StatusBadRequest,
		Errors: errors,
	})
}
