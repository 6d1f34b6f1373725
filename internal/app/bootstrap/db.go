// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	attendancestore "github.com/dalemusser/ridehub/internal/app/store/attendance"
	clusterstore "github.com/dalemusser/ridehub/internal/app/store/clusters"
	userstore "github.com/dalemusser/ridehub/internal/app/store/users"
	"github.com/dalemusser/ridehub/internal/app/system/cache"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB establishes the MongoDB connection and, when configured, the
// Redis cache client. A Redis failure at startup is fatal only if an
// address was explicitly configured: a misconfigured accelerator should
// surface, an absent one should not.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}
	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))

	deps := DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
	}

	deps.Cache = cache.New(appCfg.RedisAddr, appCfg.RedisPassword, appCfg.RedisDB, logger)
	if deps.Cache != nil {
		if err := deps.Cache.Ping(ctx); err != nil {
			return DBDeps{}, fmt.Errorf("redis ping: %w", err)
		}
		logger.Info("connected to Redis cache", zap.String("addr", appCfg.RedisAddr))
	}

	return deps, nil
}

// EnsureSchema creates the unique indexes the stores' invariants depend
// on. Index creation is idempotent, so this runs on every startup.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.MongoDatabase

	if err := userstore.EnsureIndexes(ctx, db); err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}
	if err := clusterstore.EnsureIndexes(ctx, db); err != nil {
		return fmt.Errorf("clusters indexes: %w", err)
	}
	if err := attendancestore.EnsureIndexes(ctx, db); err != nil {
		return fmt.Errorf("attendance indexes: %w", err)
	}

	logger.Info("database indexes ensured")
	return nil
}
