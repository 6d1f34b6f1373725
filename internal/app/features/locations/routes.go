// internal/app/features/locations/routes.go
package locations

import (
	"github.com/dalemusser/ridehub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns the subrouter for /api/v1/locations. The write routes get
// the per-client rate limiter; the read route is cached instead.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)

	r.Get("/", h.List)

	r.Group(func(r chi.Router) {
		if h.Limiter != nil {
			r.Use(h.Limiter.Middleware)
		}
		r.Post("/driver", h.UpdateDriver)
		r.Post("/member", h.UpdateMember)
		r.Post("/member/{id}/arrived", h.MarkArrived)
	})
	return r
}
