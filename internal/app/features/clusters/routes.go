// internal/app/features/clusters/routes.go
package clusters

import (
	"github.com/dalemusser/ridehub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns the subrouter for /api/v1/clusters. Every endpoint
// requires a signed-in user.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)
	r.Post("/", h.Create)
	r.Post("/join", h.Join)
	r.Get("/driver/{driverID}", h.DriverView)
	r.Get("/member/{userID}", h.MemberView)
	return r
}
