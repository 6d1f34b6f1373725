package reportstore_test

import (
	"strings"
	"testing"

	reportstore "github.com/dalemusser/ridehub/internal/app/store/reports"
	"github.com/dalemusser/ridehub/internal/app/system/apperr"
	"github.com/dalemusser/ridehub/internal/domain/models"
	"github.com/dalemusser/ridehub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Submit(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := reportstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	userID := primitive.NewObjectID()
	report, err := store.Submit(ctx, userID, "Riley Rider", "delay", "The van was 20 minutes late.")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if report.Status != models.ReportPending {
		t.Errorf("Status: got %q, want pending", report.Status)
	}
	if report.CreatedAt.IsZero() {
		t.Error("CreatedAt not stamped")
	}
	if report.UserID != userID {
		t.Errorf("UserID: got %s", report.UserID.Hex())
	}
}

func TestStore_Submit_SanitizesMessage(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := reportstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	report, err := store.Submit(ctx, primitive.NewObjectID(), "Riley", "safety",
		`broken seatbelt <script>alert("x")</script>`)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if strings.Contains(report.Message, "script") {
		t.Errorf("script survived sanitization: %q", report.Message)
	}
	if !strings.Contains(report.Message, "broken seatbelt") {
		t.Errorf("safe text lost: %q", report.Message)
	}
}

func TestStore_Submit_BlankMessage(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := reportstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Submit(ctx, primitive.NewObjectID(), "Riley", "delay", "   ")
	if !apperr.IsKind(err, apperr.KindValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestStore_Resolve(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := reportstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	report := fixtures.CreateReport(ctx, primitive.NewObjectID(), "Riley", "delay", "late", models.ReportPending)

	if err := store.Resolve(ctx, report.ID); err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	var got models.Report
	if err := db.Collection("reports").FindOne(ctx, bson.M{"_id": report.ID}).Decode(&got); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if got.Status != models.ReportResolved {
		t.Errorf("Status: got %q, want resolved", got.Status)
	}
}

func TestStore_Resolve_AlreadyResolved(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := reportstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	report := fixtures.CreateReport(ctx, primitive.NewObjectID(), "Riley", "delay", "late", models.ReportResolved)

	// Idempotent: no error, status stays resolved.
	if err := store.Resolve(ctx, report.ID); err != nil {
		t.Fatalf("Resolve on resolved report failed: %v", err)
	}

	var got models.Report
	if err := db.Collection("reports").FindOne(ctx, bson.M{"_id": report.ID}).Decode(&got); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if got.Status != models.ReportResolved {
		t.Errorf("Status: got %q", got.Status)
	}
}

func TestStore_Resolve_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := reportstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Resolve(ctx, primitive.NewObjectID()); !apperr.IsKind(err, apperr.KindNotFound) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestStore_List(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := reportstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateReport(ctx, primitive.NewObjectID(), "A", "delay", "first", models.ReportPending)
	fixtures.CreateReport(ctx, primitive.NewObjectID(), "B", "safety", "second", models.ReportResolved)

	reports, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(reports) != 2 {
		t.Errorf("expected 2 reports, got %d", len(reports))
	}
}
