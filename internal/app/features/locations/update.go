// internal/app/features/locations/update.go
package locations

import (
	"context"
	"net/http"

	"github.com/dalemusser/ridehub/internal/app/system/apperr"
	"github.com/dalemusser/ridehub/internal/app/system/geo"
	"github.com/dalemusser/ridehub/internal/app/system/respond"
	"github.com/dalemusser/ridehub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type driverUpdateRequest struct {
	ID        string  `json:"id"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	IsDriving bool    `json:"isDriving"`
}

// UpdateDriver handles POST /api/v1/locations/driver: overwrite the
// driver's last known position.
func (h *Handler) UpdateDriver(w http.ResponseWriter, r *http.Request) {
	var req driverUpdateRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	driverID, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		respond.Err(w, h.Log, apperr.Validation("invalid driver id"))
		return
	}
	if err := geo.ValidateLatLng(req.Lat, req.Lng); err != nil {
		respond.Err(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Presence.UpsertDriver(ctx, driverID, req.Lat, req.Lng, req.IsDriving); err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	h.Cache.Invalidate(ctx, listCacheKey)
	respond.OK(w, nil)
}

type memberUpdateRequest struct {
	ID   string  `json:"id"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Name string  `json:"name"`

	// Arrived is a pointer so an omitted field is distinguishable from an
	// explicit false: omitted preserves the stored flag, false clears it.
	Arrived *bool `json:"arrived,omitempty"`
}

// UpdateMember handles POST /api/v1/locations/member: overwrite a rider's
// last known position.
func (h *Handler) UpdateMember(w http.ResponseWriter, r *http.Request) {
	var req memberUpdateRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	memberID, err := primitive.ObjectIDFromHex(req.ID)
	if err != nil {
		respond.Err(w, h.Log, apperr.Validation("invalid member id"))
		return
	}
	if err := geo.ValidateLatLng(req.Lat, req.Lng); err != nil {
		respond.Err(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Presence.UpsertMember(ctx, memberID, req.Lat, req.Lng, req.Name, req.Arrived); err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	h.Cache.Invalidate(ctx, listCacheKey)
	respond.OK(w, nil)
}

// MarkArrived handles POST /api/v1/locations/member/{id}/arrived. The
// client decides when it has arrived; the server only records the flag.
func (h *Handler) MarkArrived(w http.ResponseWriter, r *http.Request) {
	memberID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Err(w, h.Log, apperr.Validation("invalid member id"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Presence.MarkArrived(ctx, memberID); err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	h.Cache.Invalidate(ctx, listCacheKey)
	respond.OK(w, nil)
}
