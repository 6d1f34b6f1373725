// internal/app/features/reports/handler.go
package reports

import (
	"context"
	"net/http"
	"sort"

	reportstore "github.com/dalemusser/ridehub/internal/app/store/reports"
	"github.com/dalemusser/ridehub/internal/app/system/apperr"
	"github.com/dalemusser/ridehub/internal/app/system/respond"
	"github.com/dalemusser/ridehub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler holds dependencies for the report endpoints.
type Handler struct {
	Reports *reportstore.Store
	Log     *zap.Logger
}

// NewHandler constructs a reports Handler.
func NewHandler(reports *reportstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Reports: reports, Log: logger}
}

type submitRequest struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Type     string `json:"type"`
	Message  string `json:"message"`
}

// Submit handles POST /api/v1/reports. The message is HTML-sanitized in
// the store before it is persisted.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		respond.Err(w, h.Log, apperr.Validation("invalid user id"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	report, err := h.Reports.Submit(ctx, userID, req.UserName, req.Type, req.Message)
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	respond.OK(w, map[string]any{"report": report})
}

// List handles GET /api/v1/reports: every report, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	reports, err := h.Reports.List(ctx)
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})
	respond.OK(w, map[string]any{"reports": reports})
}

// Resolve handles POST /api/v1/reports/{id}/resolve. Resolving an
// already-resolved report is a no-op.
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		respond.Err(w, h.Log, apperr.Validation("invalid report id"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Reports.Resolve(ctx, id); err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	respond.OK(w, nil)
}
