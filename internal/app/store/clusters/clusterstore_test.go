package clusterstore_test

import (
	"testing"

	clusterstore "github.com/dalemusser/ridehub/internal/app/store/clusters"
	"github.com/dalemusser/ridehub/internal/app/system/apperr"
	"github.com/dalemusser/ridehub/internal/domain/models"
	"github.com/dalemusser/ridehub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := clusterstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	driver := fixtures.CreateDriver(ctx, "Dana Driver", "dana@example.com", 8)

	cluster, err := store.Create(ctx, "Morning Run", driver.ID)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if cluster.DriverID != driver.ID {
		t.Errorf("DriverID: got %s, want %s", cluster.DriverID.Hex(), driver.ID.Hex())
	}
	if cluster.Code == "" {
		t.Error("expected a join code")
	}
	if cluster.Capacity != 8 {
		t.Errorf("Capacity: got %d, want driver's 8", cluster.Capacity)
	}

	// The driver's profile is stamped with the new code.
	var u models.User
	if err := db.Collection("users").FindOne(ctx, bson.M{"_id": driver.ID}).Decode(&u); err != nil {
		t.Fatalf("reload driver: %v", err)
	}
	if u.ClusterCode != cluster.Code {
		t.Errorf("driver cluster_code: got %q, want %q", u.ClusterCode, cluster.Code)
	}
}

func TestStore_Create_CapacityFallback(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := clusterstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	driver := fixtures.CreateDriver(ctx, "Dana Driver", "dana@example.com", 0)

	cluster, err := store.Create(ctx, "Morning Run", driver.ID)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if cluster.Capacity != clusterstore.DefaultCapacity {
		t.Errorf("Capacity: got %d, want default %d", cluster.Capacity, clusterstore.DefaultCapacity)
	}
}

func TestStore_Create_BlankName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := clusterstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	driver := fixtures.CreateDriver(ctx, "Dana Driver", "dana@example.com", 8)

	if _, err := store.Create(ctx, "   ", driver.ID); !apperr.IsKind(err, apperr.KindValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestStore_Create_UnknownDriver(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := clusterstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, "Morning Run", primitive.NewObjectID()); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestStore_Create_SecondClusterSameDriver(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := clusterstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	driver := fixtures.CreateDriver(ctx, "Dana Driver", "dana@example.com", 8)

	if _, err := store.Create(ctx, "Morning Run", driver.ID); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	if _, err := store.Create(ctx, "Evening Run", driver.ID); !apperr.IsKind(err, apperr.KindConflict) {
		t.Errorf("expected conflict for second cluster, got %v", err)
	}
}

func TestStore_Create_UniqueCodes(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := clusterstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		driver := fixtures.CreateDriver(ctx, "Driver", driverEmail(i), 4)
		cluster, err := store.Create(ctx, "Run", driver.ID)
		if err != nil {
			t.Fatalf("Create %d failed: %v", i, err)
		}
		if seen[cluster.Code] {
			t.Fatalf("duplicate code %q", cluster.Code)
		}
		seen[cluster.Code] = true
	}
}

func driverEmail(i int) string {
	return "driver" + string(rune('a'+i)) + "@example.com"
}

func TestStore_Join(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := clusterstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	driver := fixtures.CreateDriver(ctx, "Dana Driver", "dana@example.com", 8)
	rider := fixtures.CreateRider(ctx, "Riley Rider", "riley@example.com")
	cluster := fixtures.CreateCluster(ctx, "Morning Run", "X7K2PQ", driver.ID)

	got, err := store.Join(ctx, "x7k2pq", rider.ID) // lowercase on purpose
	if err != nil {
		t.Fatalf("Join failed: %v", err)
	}
	if got.ID != cluster.ID {
		t.Errorf("joined wrong cluster: %s", got.ID.Hex())
	}
	if len(got.MemberIDs) != 1 || got.MemberIDs[0] != rider.ID {
		t.Errorf("MemberIDs: got %v", got.MemberIDs)
	}

	// Rider's profile is stamped.
	var u models.User
	if err := db.Collection("users").FindOne(ctx, bson.M{"_id": rider.ID}).Decode(&u); err != nil {
		t.Fatalf("reload rider: %v", err)
	}
	if u.ClusterCode != "X7K2PQ" {
		t.Errorf("rider cluster_code: got %q", u.ClusterCode)
	}
}

func TestStore_Join_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := clusterstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	driver := fixtures.CreateDriver(ctx, "Dana Driver", "dana@example.com", 8)
	rider := fixtures.CreateRider(ctx, "Riley Rider", "riley@example.com")
	fixtures.CreateCluster(ctx, "Morning Run", "X7K2PQ", driver.ID)

	if _, err := store.Join(ctx, "X7K2PQ", rider.ID); err != nil {
		t.Fatalf("first Join failed: %v", err)
	}
	got, err := store.Join(ctx, "X7K2PQ", rider.ID)
	if err != nil {
		t.Fatalf("second Join failed: %v", err)
	}
	if len(got.MemberIDs) != 1 {
		t.Errorf("re-join duplicated membership: %v", got.MemberIDs)
	}
}

func TestStore_Join_UnknownCode(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := clusterstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	rider := fixtures.CreateRider(ctx, "Riley Rider", "riley@example.com")

	if _, err := store.Join(ctx, "NOSUCH", rider.ID); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}

	// No side effects: the rider's profile is untouched.
	var u models.User
	if err := db.Collection("users").FindOne(ctx, bson.M{"_id": rider.ID}).Decode(&u); err != nil {
		t.Fatalf("reload rider: %v", err)
	}
	if u.ClusterCode != "" {
		t.Errorf("failed join stamped rider profile: %q", u.ClusterCode)
	}
}

func TestStore_GetByDriver_None(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := clusterstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	cluster, err := store.GetByDriver(ctx, primitive.NewObjectID())
	if err != nil {
		t.Fatalf("GetByDriver failed: %v", err)
	}
	if cluster != nil {
		t.Errorf("expected nil cluster, got %+v", cluster)
	}
}

func TestStore_GetForUser(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := clusterstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	driver := fixtures.CreateDriver(ctx, "Dana Driver", "dana@example.com", 8)
	rider := fixtures.CreateRider(ctx, "Riley Rider", "riley@example.com")
	fixtures.CreateCluster(ctx, "Morning Run", "X7K2PQ", driver.ID)

	// Before joining: no cluster.
	got, err := store.GetForUser(ctx, rider.ID)
	if err != nil {
		t.Fatalf("GetForUser failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil before join, got %+v", got)
	}

	if _, err := store.Join(ctx, "X7K2PQ", rider.ID); err != nil {
		t.Fatalf("Join failed: %v", err)
	}

	got, err = store.GetForUser(ctx, rider.ID)
	if err != nil {
		t.Fatalf("GetForUser after join failed: %v", err)
	}
	if got == nil || got.Code != "X7K2PQ" {
		t.Errorf("GetForUser after join: got %+v", got)
	}
}

func TestStore_ListMembers_FiltersDangling(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := clusterstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	driver := fixtures.CreateDriver(ctx, "Dana Driver", "dana@example.com", 8)
	rider := fixtures.CreateRider(ctx, "Riley Rider", "riley@example.com")
	ghost := primitive.NewObjectID() // member id with no user record
	fixtures.CreateCluster(ctx, "Morning Run", "X7K2PQ", driver.ID, rider.ID, ghost)

	members, err := store.ListMembers(ctx, "X7K2PQ")
	if err != nil {
		t.Fatalf("ListMembers failed: %v", err)
	}
	if len(members) != 1 || members[0].ID != rider.ID {
		t.Errorf("members: got %+v, want just the rider", members)
	}
}

func TestStore_ListMembers_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := clusterstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	driver := fixtures.CreateDriver(ctx, "Dana Driver", "dana@example.com", 8)
	fixtures.CreateCluster(ctx, "Morning Run", "X7K2PQ", driver.ID)

	members, err := store.ListMembers(ctx, "X7K2PQ")
	if err != nil {
		t.Fatalf("ListMembers failed: %v", err)
	}
	if len(members) != 0 {
		t.Errorf("expected empty member list, got %+v", members)
	}
}
