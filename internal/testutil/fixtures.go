package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/ridehub/internal/domain/models"
	"github.com/dalemusser/ridehub/internal/app/system/normalize"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts a user with the given role. The password is "pw" for
// every fixture user.
func (f *Fixtures) CreateUser(ctx context.Context, fullName, email, role string, capacity int) models.User {
	f.t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.MinCost)
	if err != nil {
		f.t.Fatalf("failed to hash fixture password: %v", err)
	}

	now := time.Now().UTC()
	u := models.User{
		ID:           primitive.NewObjectID(),
		FullName:     fullName,
		Email:        normalize.Email(email),
		PasswordHash: string(hash),
		Role:         role,
		Capacity:     capacity,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return u
}

// CreateDriver inserts a driver with the given seat capacity.
func (f *Fixtures) CreateDriver(ctx context.Context, fullName, email string, capacity int) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, fullName, email, "driver", capacity)
}

// CreateRider inserts a rider.
func (f *Fixtures) CreateRider(ctx context.Context, fullName, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, fullName, email, "rider", 0)
}

// CreateOperator inserts an operator.
func (f *Fixtures) CreateOperator(ctx context.Context, fullName, email string) models.User {
	f.t.Helper()
	return f.CreateUser(ctx, fullName, email, "operator", 0)
}

// CreateCluster inserts a cluster document directly, bypassing the store's
// code generation, for tests that need a known code.
func (f *Fixtures) CreateCluster(ctx context.Context, name, code string, driverID primitive.ObjectID, memberIDs ...primitive.ObjectID) models.Cluster {
	f.t.Helper()

	if memberIDs == nil {
		memberIDs = []primitive.ObjectID{}
	}
	now := time.Now().UTC()
	c := models.Cluster{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Code:      normalize.Code(code),
		DriverID:  driverID,
		MemberIDs: memberIDs,
		Capacity:  12,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := f.db.Collection("clusters").InsertOne(ctx, c); err != nil {
		f.t.Fatalf("failed to create test cluster: %v", err)
	}
	return c
}

// CreateReport inserts a report in the given status.
func (f *Fixtures) CreateReport(ctx context.Context, userID primitive.ObjectID, userName, reportType, message, status string) models.Report {
	f.t.Helper()

	r := models.Report{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		UserName:  userName,
		Type:      reportType,
		Message:   message,
		Status:    status,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := f.db.Collection("reports").InsertOne(ctx, r); err != nil {
		f.t.Fatalf("failed to create test report: %v", err)
	}
	return r
}
