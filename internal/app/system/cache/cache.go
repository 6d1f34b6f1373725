// Package cache is a small JSON read-through cache over Redis, used to
// absorb the polling load on the locations list endpoint.
//
// The cache is optional: with no Redis address configured, Cache is nil and
// GetOrLoad falls straight through to the loader. Redis failures degrade the
// same way, so a cache outage never breaks polling.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Cache struct {
	rdb *redis.Client
	log *zap.Logger
}

// New connects a client to the given Redis address. Returns nil when addr
// is blank, which disables caching throughout.
func New(addr, password string, db int, logger *zap.Logger) *Cache {
	if addr == "" {
		return nil
	}
	return &Cache{
		rdb: redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db}),
		log: logger,
	}
}

// Ping verifies connectivity. Safe on a nil Cache.
func (c *Cache) Ping(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.rdb.Ping(ctx).Err()
}

// Close releases the client. Safe on a nil Cache.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.rdb.Close()
}

// GetOrLoadJSON returns the cached JSON value for key, or invokes load,
// caches its result for ttl, and returns it. On any Redis error the loader
// result is returned directly.
func GetOrLoadJSON[T any](
	c *Cache,
	ctx context.Context,
	key string,
	ttl time.Duration,
	load func(ctx context.Context) (T, error),
) (T, error) {
	var out T
	if c == nil {
		return load(ctx)
	}

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil {
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Unparseable entry: fall through and overwrite it.
	}

	out, err := load(ctx)
	if err != nil {
		return out, err
	}

	if b, err := json.Marshal(out); err == nil {
		if err := c.rdb.Set(ctx, key, b, ttl).Err(); err != nil && c.log != nil {
			c.log.Warn("cache set failed", zap.String("key", key), zap.Error(err))
		}
	}
	return out, nil
}

// Invalidate drops a key. Safe on a nil Cache; errors are logged, not
// returned, since a stale entry expires on its own within the TTL.
func (c *Cache) Invalidate(ctx context.Context, key string) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, key).Err(); err != nil && c.log != nil {
		c.log.Warn("cache invalidate failed", zap.String("key", key), zap.Error(err))
	}
}
