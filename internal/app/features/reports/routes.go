// internal/app/features/reports/routes.go
package reports

import (
	"github.com/dalemusser/ridehub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns the subrouter for /api/v1/reports. Anyone signed in can
// file and read reports; only operators resolve them.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)
	r.Post("/", h.Submit)
	r.Get("/", h.List)
	r.With(auth.RequireRole("operator")).Post("/{id}/resolve", h.Resolve)
	return r
}
