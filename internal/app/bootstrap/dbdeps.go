// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/ridehub/internal/app/system/cache"
	"go.mongodb.org/mongo-driver/mongo"
)

// DBDeps holds database/back-end dependencies for the app.
type DBDeps struct {
	MongoClient   *mongo.Client
	MongoDatabase *mongo.Database

	// Cache is nil when no Redis address is configured; every consumer is
	// nil-safe.
	Cache *cache.Cache
}
