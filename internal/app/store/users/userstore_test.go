package userstore_test

import (
	"testing"

	userstore "github.com/dalemusser/ridehub/internal/app/store/users"
	"github.com/dalemusser/ridehub/internal/app/system/apperr"
	"github.com/dalemusser/ridehub/internal/domain/models"
	"github.com/dalemusser/ridehub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u, err := store.Create(ctx, models.User{
		FullName:     "  Jane   Doe ",
		Email:        "Jane@Example.COM",
		PasswordHash: "x",
		Role:         "Rider",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if u.FullName != "Jane Doe" {
		t.Errorf("FullName not normalized: %q", u.FullName)
	}
	if u.Email != "jane@example.com" {
		t.Errorf("Email not normalized: %q", u.Email)
	}
	if u.Role != "rider" {
		t.Errorf("Role not normalized: %q", u.Role)
	}
}

func TestStore_Create_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	base := models.User{FullName: "Jane Doe", Email: "jane@example.com", PasswordHash: "x", Role: "rider"}
	if _, err := store.Create(ctx, base); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	// Same address with different case still collides.
	base.Email = "JANE@example.com"
	if _, err := store.Create(ctx, base); !apperr.IsKind(err, apperr.KindConflict) {
		t.Errorf("expected conflict, got %v", err)
	}
}

func TestStore_Create_BadRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.User{FullName: "Jane", Email: "jane@example.com", PasswordHash: "x", Role: "pilot"})
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestStore_Create_NonDriverCapacityCleared(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	u, err := store.Create(ctx, models.User{FullName: "Jane", Email: "jane@example.com", PasswordHash: "x", Role: "rider", Capacity: 7})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if u.Capacity != 0 {
		t.Errorf("rider kept capacity %d", u.Capacity)
	}
}

func TestStore_GetByEmail_CaseInsensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created := fixtures.CreateRider(ctx, "Riley Rider", "riley@example.com")

	u, err := store.GetByEmail(ctx, " Riley@Example.com ")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if u.ID != created.ID {
		t.Errorf("wrong user: %s", u.ID.Hex())
	}
}

func TestStore_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.GetByID(ctx, primitive.NewObjectID()); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestStore_GetByIDs_SkipsMissing(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	a := fixtures.CreateRider(ctx, "A", "a@example.com")
	b := fixtures.CreateRider(ctx, "B", "b@example.com")

	users, err := store.GetByIDs(ctx, []primitive.ObjectID{a.ID, primitive.NewObjectID(), b.ID})
	if err != nil {
		t.Fatalf("GetByIDs failed: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("expected 2 users, got %d", len(users))
	}
}
