// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	presencestore "github.com/dalemusser/ridehub/internal/app/store/presence"
	"github.com/dalemusser/ridehub/internal/app/system/workers"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// sweeper is the optional background presence sweeper, started here and
// stopped in Shutdown. Nil when presence_sweep_after is zero.
var sweeper *workers.PresenceSweep

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.PresenceSweepAfter > 0 {
		sweeper = workers.NewPresenceSweep(
			presencestore.New(deps.MongoDatabase),
			logger,
			appCfg.PresenceSweepEvery,
			appCfg.PresenceSweepAfter,
		)
		sweeper.Start()
	}
	return nil
}
