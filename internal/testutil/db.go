// Package testutil provides the shared plumbing for store and handler
// tests: a per-test Mongo database, data fixtures, and HTTP helpers.
package testutil

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"testing"
	"time"

	attendancestore "github.com/dalemusser/ridehub/internal/app/store/attendance"
	clusterstore "github.com/dalemusser/ridehub/internal/app/store/clusters"
	userstore "github.com/dalemusser/ridehub/internal/app/store/users"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var dbCounter atomic.Int64

// SetupTestDB connects to the Mongo instance named by RIDEHUB_TEST_MONGO_URI
// (default mongodb://localhost:27017) and hands the test its own throwaway
// database with all indexes in place. The database is dropped on cleanup.
//
// Tests are skipped, not failed, when no Mongo is reachable, so the rest of
// the suite stays useful on machines without one.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("RIDEHUB_TEST_MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Skipf("skipping: cannot connect to test Mongo at %s: %v", uri, err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		t.Skipf("skipping: test Mongo at %s not reachable: %v", uri, err)
	}

	name := fmt.Sprintf("ridehub_test_%d_%d", time.Now().UnixNano(), dbCounter.Add(1))
	db := client.Database(name)

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	// The stores' uniqueness invariants live in these indexes; tests that
	// exercise duplicate handling need them just like production does.
	idxCtx, idxCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer idxCancel()
	for _, ensure := range []func(context.Context, *mongo.Database) error{
		userstore.EnsureIndexes,
		clusterstore.EnsureIndexes,
		attendancestore.EnsureIndexes,
	} {
		if err := ensure(idxCtx, db); err != nil {
			t.Fatalf("failed to create test indexes: %v", err)
		}
	}

	return db
}

// TestContext returns a context with a generous deadline for test
// database operations.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}
