// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for RideHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, jwt_secret, etc.
//   - Environment variables: RIDEHUB_MONGO_URI, RIDEHUB_JWT_SECRET, etc.
//   - Command-line flags: --mongo_uri, --jwt_secret, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "ridehub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size"},

	// Token signing
	{Name: "jwt_secret", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "HMAC secret for access tokens (must be strong in production)"},
	{Name: "token_ttl", Default: "24h", Desc: "Access token lifetime (e.g., 24h, 7d expressed as 168h)"},

	// Redis cache (optional)
	{Name: "redis_addr", Default: "", Desc: "Redis address for the locations cache (blank disables caching)"},
	{Name: "redis_password", Default: "", Desc: "Redis password"},
	{Name: "redis_db", Default: 0, Desc: "Redis database number"},

	// Presence sweeper (optional)
	{Name: "presence_sweep_after", Default: "0s", Desc: "Delete presence entries older than this (0 disables the sweeper)"},
	{Name: "presence_sweep_every", Default: "1m", Desc: "How often the presence sweeper runs"},

	// Location update rate limiting
	{Name: "location_rate_rps", Default: 2, Desc: "Location updates allowed per second per client IP"},
	{Name: "location_rate_burst", Default: 10, Desc: "Location update burst allowance"},

	// Cluster defaults
	{Name: "default_cluster_capacity", Default: 12, Desc: "Cluster capacity when the driver has no seat count"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, RIDEHUB_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "RIDEHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		JWTSecret: appValues.String("jwt_secret"),
		TokenTTL:  appValues.Duration("token_ttl", 24*time.Hour),

		RedisAddr:     appValues.String("redis_addr"),
		RedisPassword: appValues.String("redis_password"),
		RedisDB:       appValues.Int("redis_db"),

		PresenceSweepAfter: appValues.Duration("presence_sweep_after", 0),
		PresenceSweepEvery: appValues.Duration("presence_sweep_every", time.Minute),

		LocationRateRPS:   float64(appValues.Int("location_rate_rps")),
		LocationRateBurst: appValues.Int("location_rate_burst"),

		DefaultClusterCapacity: appValues.Int("default_cluster_capacity"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// RideHub validates the MongoDB URI format to catch configuration errors
// early, before attempting to connect, and refuses to start in production
// with the development signing secret.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.JWTSecret == "" {
		return fmt.Errorf("jwt_secret must not be empty")
	}
	if coreCfg.Env == "prod" && appCfg.JWTSecret == "dev-only-change-me-please-0123456789ABCDEF" {
		return fmt.Errorf("jwt_secret must be changed from the development default in production")
	}

	if appCfg.TokenTTL <= 0 {
		return fmt.Errorf("token_ttl must be positive")
	}
	if appCfg.PresenceSweepAfter > 0 && appCfg.PresenceSweepEvery <= 0 {
		return fmt.Errorf("presence_sweep_every must be positive when the sweeper is enabled")
	}

	return nil
}
