// internal/app/store/clusters/clusterstore.go
package clusterstore

import (
	"context"
	"time"

	"github.com/dalemusser/ridehub/internal/app/system/apperr"
	"github.com/dalemusser/ridehub/internal/app/system/normalize"
	"github.com/dalemusser/ridehub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DefaultCapacity is used when the owning driver has no seat count on
// their profile.
const DefaultCapacity = 12

type Store struct {
	c     *mongo.Collection
	users *mongo.Collection

	// DefaultCapacity can be overridden from config; zero falls back to
	// the package constant.
	DefaultCapacity int
}

func New(db *mongo.Database) *Store {
	return &Store{
		c:     db.Collection("clusters"),
		users: db.Collection("users"),
	}
}

// EnsureIndexes creates the unique indexes the store's invariants depend on:
// one cluster per join code, one cluster per driver.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("clusters").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "code", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "driver_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	})
	return err
}

func (s *Store) defaultCapacity() int {
	if s.DefaultCapacity > 0 {
		return s.DefaultCapacity
	}
	return DefaultCapacity
}

// Create makes a cluster for the given driver with a fresh join code and
// stamps the driver's profile with it. Capacity comes from the driver's
// seat count, falling back to the default.
//
// The one-cluster-per-driver invariant is enforced by the unique index on
// driver_id, not by a racy read-then-insert check.
func (s *Store) Create(ctx context.Context, name string, driverID primitive.ObjectID) (*models.Cluster, error) {
	name = normalize.Name(name)
	if name == "" {
		return nil, apperr.Validation("name is required")
	}

	var driver models.User
	if err := s.users.FindOne(ctx, bson.M{"_id": driverID}).Decode(&driver); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("driver not found")
		}
		return nil, apperr.Internal(err)
	}

	capacity := driver.Capacity
	if capacity <= 0 {
		capacity = s.defaultCapacity()
	}

	now := time.Now().UTC()
	cluster := models.Cluster{
		ID:        primitive.NewObjectID(),
		Name:      name,
		DriverID:  driverID,
		MemberIDs: []primitive.ObjectID{},
		Capacity:  capacity,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Code collisions are resolved by retrying the insert: the unique index
	// is the arbiter, so two concurrent creates can never share a code.
	for attempt := 0; ; attempt++ {
		cluster.Code = newCode(attempt)
		_, err := s.c.InsertOne(ctx, cluster)
		if err == nil {
			break
		}
		if !wafflemongo.IsDup(err) {
			return nil, apperr.Internal(err)
		}
		// A duplicate on driver_id means this driver already owns a
		// cluster; a duplicate on code means an unlucky draw.
		n, cErr := s.c.CountDocuments(ctx, bson.M{"driver_id": driverID})
		if cErr != nil {
			return nil, apperr.Internal(cErr)
		}
		if n > 0 {
			return nil, apperr.Conflict("this driver already has a cluster")
		}
		if attempt >= maxCodeAttempts {
			return nil, apperr.Internal(err)
		}
	}

	if err := s.stampUserCode(ctx, driverID, cluster.Code); err != nil {
		return nil, err
	}
	return &cluster, nil
}

// Join adds a user to the cluster with the given code (case-insensitive)
// and stamps the user's profile. Re-joining is a no-op, not an error.
func (s *Store) Join(ctx context.Context, code string, userID primitive.ObjectID) (*models.Cluster, error) {
	code = normalize.Code(code)
	if code == "" {
		return nil, apperr.Validation("code is required")
	}

	if err := s.users.FindOne(ctx, bson.M{"_id": userID}).Err(); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Internal(err)
	}

	// $addToSet keeps membership set-like under concurrent joins; the
	// update is a single atomic document operation.
	after := options.After
	res := s.c.FindOneAndUpdate(ctx,
		bson.M{"code": code},
		bson.M{
			"$addToSet": bson.M{"member_ids": userID},
			"$set":      bson.M{"updated_at": time.Now().UTC()},
		},
		options.FindOneAndUpdate().SetReturnDocument(after),
	)

	var cluster models.Cluster
	if err := res.Decode(&cluster); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("no cluster with that code")
		}
		return nil, apperr.Internal(err)
	}

	if err := s.stampUserCode(ctx, userID, cluster.Code); err != nil {
		return nil, err
	}
	return &cluster, nil
}

// GetByCode resolves a join code case-insensitively. Returns NotFound for
// an unknown code.
func (s *Store) GetByCode(ctx context.Context, code string) (*models.Cluster, error) {
	var cluster models.Cluster
	err := s.c.FindOne(ctx, bson.M{"code": normalize.Code(code)}).Decode(&cluster)
	if err == mongo.ErrNoDocuments {
		return nil, apperr.NotFound("no cluster with that code")
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &cluster, nil
}

// GetByDriver returns the driver's cluster, or (nil, nil) when the driver
// has not created one.
func (s *Store) GetByDriver(ctx context.Context, driverID primitive.ObjectID) (*models.Cluster, error) {
	var cluster models.Cluster
	err := s.c.FindOne(ctx, bson.M{"driver_id": driverID}).Decode(&cluster)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &cluster, nil
}

// GetForUser resolves a user's cluster via the code stamped on their
// profile. Returns (nil, nil) when the user has not joined one.
func (s *Store) GetForUser(ctx context.Context, userID primitive.ObjectID) (*models.Cluster, error) {
	var u models.User
	if err := s.users.FindOne(ctx, bson.M{"_id": userID}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperr.NotFound("user not found")
		}
		return nil, apperr.Internal(err)
	}
	if u.ClusterCode == "" {
		return nil, nil
	}
	cluster, err := s.GetByCode(ctx, u.ClusterCode)
	if apperr.IsKind(err, apperr.KindNotFound) {
		// Stale stamp: the stamped cluster no longer resolves.
		return nil, nil
	}
	return cluster, err
}

// ListMembers loads the member profiles of the cluster with the given code.
// Member ids whose user record no longer exists are filtered out, not fatal.
func (s *Store) ListMembers(ctx context.Context, code string) ([]models.User, error) {
	cluster, err := s.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if len(cluster.MemberIDs) == 0 {
		return []models.User{}, nil
	}

	cur, err := s.users.Find(ctx, bson.M{"_id": bson.M{"$in": cluster.MemberIDs}})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	defer cur.Close(ctx)

	var members []models.User
	if err := cur.All(ctx, &members); err != nil {
		return nil, apperr.Internal(err)
	}
	if members == nil {
		members = []models.User{}
	}
	return members, nil
}

func (s *Store) stampUserCode(ctx context.Context, userID primitive.ObjectID, code string) error {
	_, err := s.users.UpdateByID(ctx, userID, bson.M{
		"$set": bson.M{"cluster_code": code, "updated_at": time.Now().UTC()},
	})
	if err != nil {
		return apperr.Internal(err)
	}
	return nil
}
