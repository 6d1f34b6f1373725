// internal/app/features/clusters/views.go
package clusters

import (
	"context"
	"net/http"

	"github.com/dalemusser/ridehub/internal/app/system/apperr"
	"github.com/dalemusser/ridehub/internal/app/system/respond"
	"github.com/dalemusser/ridehub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// DriverView handles GET /api/v1/clusters/driver/{driverID}: the driver's
// cluster plus the resolved member profiles, for the driver dashboard.
func (h *Handler) DriverView(w http.ResponseWriter, r *http.Request) {
	driverID, err := parseID(chi.URLParam(r, "driverID"), "driver id")
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	cluster, err := h.Clusters.GetByDriver(ctx, driverID)
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	if cluster == nil {
		respond.Err(w, h.Log, apperr.NotFound("this driver has no cluster"))
		return
	}

	members, err := h.Clusters.ListMembers(ctx, cluster.Code)
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	respond.OK(w, map[string]any{"cluster": cluster, "members": members})
}

// MemberView handles GET /api/v1/clusters/member/{userID}: the cluster the
// user belongs to, resolved through the code stamped on their profile.
func (h *Handler) MemberView(w http.ResponseWriter, r *http.Request) {
	userID, err := parseID(chi.URLParam(r, "userID"), "user id")
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	cluster, err := h.Clusters.GetForUser(ctx, userID)
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	if cluster == nil {
		respond.Err(w, h.Log, apperr.NotFound("this user has not joined a cluster"))
		return
	}
	respond.OK(w, map[string]any{"cluster": cluster})
}
