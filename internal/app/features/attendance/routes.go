// internal/app/features/attendance/routes.go
package attendance

import (
	"github.com/dalemusser/ridehub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns the subrouter for /api/v1/attendance.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(auth.RequireSignedIn)
	r.Post("/", h.Mark)
	r.Get("/cluster/{clusterID}", h.ForCluster)
	return r
}
