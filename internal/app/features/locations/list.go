// internal/app/features/locations/list.go
package locations

import (
	"context"
	"net/http"
	"time"

	"github.com/dalemusser/ridehub/internal/app/system/cache"
	"github.com/dalemusser/ridehub/internal/app/system/respond"
	"github.com/dalemusser/ridehub/internal/app/system/timeouts"
	"github.com/dalemusser/ridehub/internal/domain/models"
)

const (
	listCacheKey = "locations:all"

	// Clients poll every few seconds; a short TTL keeps the view fresh
	// while collapsing a burst of concurrent polls into one Mongo scan.
	listCacheTTL = 2 * time.Second
)

type listResult struct {
	Drivers []models.DriverPresence `json:"drivers"`
	Members []models.MemberPresence `json:"members"`
}

// List handles GET /api/v1/locations: every driver and member position in
// one payload, for the shared live map.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	result, err := cache.GetOrLoadJSON(h.Cache, ctx, listCacheKey, listCacheTTL,
		func(ctx context.Context) (listResult, error) {
			drivers, members, err := h.Presence.ListAll(ctx)
			if err != nil {
				return listResult{}, err
			}
			return listResult{Drivers: drivers, Members: members}, nil
		})
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	respond.OK(w, map[string]any{
		"drivers": result.Drivers,
		"members": result.Members,
	})
}
