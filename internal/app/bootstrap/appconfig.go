// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging level, and CORS. AppConfig is everything specific
// to RideHub: backends, token signing, and the knobs for the optional
// cache, rate limiter, and presence sweeper.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Bearer-token configuration
	JWTSecret string        // HMAC signing secret for access tokens
	TokenTTL  time.Duration // Access token lifetime

	// Redis cache (optional; blank addr disables caching entirely)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Presence sweeper (optional; zero PresenceSweepAfter disables it)
	PresenceSweepAfter time.Duration // How old an entry must be before deletion
	PresenceSweepEvery time.Duration // How often the sweeper runs

	// Location update rate limiting
	LocationRateRPS   float64 // Allowed location updates per second per client
	LocationRateBurst int     // Burst allowance on top of the steady rate

	// Cluster defaults
	DefaultClusterCapacity int // Capacity when the driver has no seat count
}
