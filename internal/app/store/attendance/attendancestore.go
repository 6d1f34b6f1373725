// internal/app/store/attendance/attendancestore.go
package attendancestore

import (
	"context"
	"time"

	"github.com/dalemusser/ridehub/internal/app/system/apperr"
	"github.com/dalemusser/ridehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("attendance")}
}

// EnsureIndexes creates the compound unique index that makes Mark an
// atomic upsert: at most one record per (user, cluster, day).
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("attendance").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "user_id", Value: 1},
			{Key: "cluster_id", Value: 1},
			{Key: "day", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// DayKey renders a time as the UTC calendar-day key records are scoped by.
// Day scoping via a string key sidesteps timezone-aware expiry; the system
// serves a single small group in one timezone, so this simplification holds.
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Mark upserts today's status for (user, cluster). A repeated call with
// the same status is a no-op in effect; a different status overwrites.
func (s *Store) Mark(ctx context.Context, userID, clusterID primitive.ObjectID, status string) error {
	switch status {
	case models.StatusComing, models.StatusNotComing:
	default:
		return apperr.Validation(`status must be "coming" or "not_coming"`)
	}

	day := DayKey(time.Now())
	_, err := s.c.UpdateOne(ctx,
		bson.M{"user_id": userID, "cluster_id": clusterID, "day": day},
		bson.M{"$set": bson.M{
			"status":     status,
			"updated_at": time.Now().UTC(),
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// ForCluster returns today's statuses for the cluster as a map keyed by
// user id hex. Users with no record today are absent from the map; the
// caller must treat absence as "undeclared", not "not coming".
func (s *Store) ForCluster(ctx context.Context, clusterID primitive.ObjectID) (map[string]string, error) {
	cur, err := s.c.Find(ctx, bson.M{
		"cluster_id": clusterID,
		"day":        DayKey(time.Now()),
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	defer cur.Close(ctx)

	out := make(map[string]string)
	for cur.Next(ctx) {
		var rec models.Attendance
		if err := cur.Decode(&rec); err != nil {
			return nil, apperr.Internal(err)
		}
		out[rec.UserID.Hex()] = rec.Status
	}
	if err := cur.Err(); err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}
