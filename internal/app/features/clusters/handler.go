// internal/app/features/clusters/handler.go
package clusters

import (
	clusterstore "github.com/dalemusser/ridehub/internal/app/store/clusters"
	"github.com/dalemusser/ridehub/internal/app/system/apperr"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Handler holds dependencies for the cluster endpoints.
type Handler struct {
	Clusters *clusterstore.Store
	Log      *zap.Logger
}

// NewHandler constructs a clusters Handler.
func NewHandler(clusters *clusterstore.Store, logger *zap.Logger) *Handler {
	return &Handler{Clusters: clusters, Log: logger}
}

func parseID(raw, what string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		return primitive.NilObjectID, apperr.Validation("invalid " + what)
	}
	return id, nil
}
