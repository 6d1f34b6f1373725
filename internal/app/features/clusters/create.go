// internal/app/features/clusters/create.go
package clusters

import (
	"context"
	"net/http"

	"github.com/dalemusser/ridehub/internal/app/system/respond"
	"github.com/dalemusser/ridehub/internal/app/system/timeouts"
)

type createRequest struct {
	Name     string `json:"name"`
	DriverID string `json:"driverId"`
}

// Create handles POST /api/v1/clusters. The driver gets a fresh join code;
// a driver who already owns a cluster gets a 409.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	driverID, err := parseID(req.DriverID, "driver id")
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	cluster, err := h.Clusters.Create(ctx, req.Name, driverID)
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	respond.OK(w, map[string]any{"cluster": cluster})
}
