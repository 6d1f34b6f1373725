// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	attendancefeature "github.com/dalemusser/ridehub/internal/app/features/attendance"
	authfeature "github.com/dalemusser/ridehub/internal/app/features/auth"
	clustersfeature "github.com/dalemusser/ridehub/internal/app/features/clusters"
	healthfeature "github.com/dalemusser/ridehub/internal/app/features/health"
	locationsfeature "github.com/dalemusser/ridehub/internal/app/features/locations"
	reportsfeature "github.com/dalemusser/ridehub/internal/app/features/reports"
	attendancestore "github.com/dalemusser/ridehub/internal/app/store/attendance"
	clusterstore "github.com/dalemusser/ridehub/internal/app/store/clusters"
	presencestore "github.com/dalemusser/ridehub/internal/app/store/presence"
	reportstore "github.com/dalemusser/ridehub/internal/app/store/reports"
	userstore "github.com/dalemusser/ridehub/internal/app/store/users"
	"github.com/dalemusser/ridehub/internal/app/system/auth"
	"github.com/dalemusser/ridehub/internal/app/system/metrics"
	"github.com/dalemusser/ridehub/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed.
//
// RideHub mounts a JSON API under /api/v1 plus the /health and /metrics
// endpoints. All feature routers share one token manager; the middleware
// loads the bearer token's user into context and each feature decides what
// it requires.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	db := deps.MongoDatabase

	tokens := auth.NewTokenManager(appCfg.JWTSecret, "ridehub", appCfg.TokenTTL)

	clusters := clusterstore.New(db)
	clusters.DefaultCapacity = appCfg.DefaultClusterCapacity

	var limiter *ratelimit.Limiter
	if appCfg.LocationRateRPS > 0 {
		limiter = ratelimit.New(appCfg.LocationRateRPS, appCfg.LocationRateBurst)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)

	// Loads the bearer token's user into context if present; anonymous
	// requests pass through and hit RequireSignedIn downstream.
	r.Use(tokens.LoadTokenUser)

	healthHandler := healthfeature.NewHandler(deps.MongoClient, deps.Cache, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		authHandler := authfeature.NewHandler(userstore.New(db), tokens, logger)
		r.Mount("/auth", authfeature.Routes(authHandler))

		clustersHandler := clustersfeature.NewHandler(clusters, logger)
		r.Mount("/clusters", clustersfeature.Routes(clustersHandler))

		attendanceHandler := attendancefeature.NewHandler(attendancestore.New(db), logger)
		r.Mount("/attendance", attendancefeature.Routes(attendanceHandler))

		locationsHandler := locationsfeature.NewHandler(presencestore.New(db), deps.Cache, limiter, logger)
		r.Mount("/locations", locationsfeature.Routes(locationsHandler))

		reportsHandler := reportsfeature.NewHandler(reportstore.New(db), logger)
		r.Mount("/reports", reportsfeature.Routes(reportsHandler))
	})

	return r, nil
}
