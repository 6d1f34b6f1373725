// internal/app/features/locations/handler.go
package locations

import (
	presencestore "github.com/dalemusser/ridehub/internal/app/store/presence"
	"github.com/dalemusser/ridehub/internal/app/system/cache"
	"github.com/dalemusser/ridehub/internal/app/system/ratelimit"
	"go.uber.org/zap"
)

// Handler holds dependencies for the live-location endpoints. Cache may be
// nil (Redis disabled) and Limiter may be nil (no rate limiting); both are
// optional.
type Handler struct {
	Presence *presencestore.Store
	Cache    *cache.Cache
	Limiter  *ratelimit.Limiter
	Log      *zap.Logger
}

// NewHandler constructs a locations Handler.
func NewHandler(presence *presencestore.Store, c *cache.Cache, limiter *ratelimit.Limiter, logger *zap.Logger) *Handler {
	return &Handler{Presence: presence, Cache: c, Limiter: limiter, Log: logger}
}
