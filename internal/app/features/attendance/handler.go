// internal/app/features/attendance/handler.go
package attendance

import (
	"context"
	"net/http"

	attendancestore "github.com/dalemusser/ridehub/internal/app/store/attendance"
	"github.com/dalemusser/ridehub/internal/app/system/apperr"
	"github.com/dalemusser/ridehub/internal/app/system/respond"
	"github.com/dalemusser/ridehub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler holds dependencies for the attendance endpoints.
type Handler struct {
	Attendance *attendancestore.Store
	Log        *zap.Logger
}

// NewHandler constructs an attendance Handler.
func NewHandler(attendance *attendancestore.Store, logger *zap.Logger) *Handler {
	return &Handler{Attendance: attendance, Log: logger}
}

type markRequest struct {
	UserID    string `json:"userId"`
	ClusterID string `json:"clusterId"`
	Status    string `json:"status"`
}

// Mark handles POST /api/v1/attendance: today's coming/not_coming flag for
// one user in one cluster. Re-marking the same day overwrites.
func (h *Handler) Mark(w http.ResponseWriter, r *http.Request) {
	var req markRequest
	if err := respond.DecodeJSON(r, &req); err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		respond.Err(w, h.Log, apperr.Validation("invalid user id"))
		return
	}
	clusterID, err := primitive.ObjectIDFromHex(req.ClusterID)
	if err != nil {
		respond.Err(w, h.Log, apperr.Validation("invalid cluster id"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Attendance.Mark(ctx, userID, clusterID, req.Status); err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	respond.OK(w, nil)
}

// ForCluster handles GET /api/v1/attendance/cluster/{clusterID}: today's
// marks for the cluster as a user-id-to-status map. Users who have not
// marked simply do not appear.
func (h *Handler) ForCluster(w http.ResponseWriter, r *http.Request) {
	clusterID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "clusterID"))
	if err != nil {
		respond.Err(w, h.Log, apperr.Validation("invalid cluster id"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	marks, err := h.Attendance.ForCluster(ctx, clusterID)
	if err != nil {
		respond.Err(w, h.Log, err)
		return
	}
	respond.OK(w, map[string]any{"attendance": marks})
}
