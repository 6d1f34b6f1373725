// internal/app/features/clusters/join.go
package clusters

import (
	"context"
	"net/http"

	"github.com/dalemusser/ridehub/internal/app/system/respond"
	"github.com/dalemusser/ridehub/internal/app/system/timeouts"
)

type joinRequest struct {
	Code   string `json:"code"`
	UserID string `json:"userId"`
}

// Join handles POST /api/v1/clusters/join. Codes match case-insensitively
// and re-joining the same cluster is a no-op.
func (h *Handler) Join(w http.ResponseWriter, r *http.Request) {
	var req joinRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	userID, err := parseID(req.UserID, "user id")
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	cluster, err := h.Clusters.Join(ctx, req.Code, userID)
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	respond.OK(w, map[string]any{"cluster": cluster})
}
