// internal/app/store/presence/presencestore.go
package presencestore

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
	drivers *mongo.Collection
	members *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{
		drivers: db.Collection("driver_presence"),
		members: db.Collection("member_presence"),
	}
}

// UpsertDriver overwrites the driver's last known position. The document
// id is the driver id, so concurrent pushes are last-write-wins on a
// single document.
func (s *Store) UpsertDriver(ctx context.Context, driverID primitive.ObjectID, lat, lng float64, isDriving bool) error {
	entry := models.DriverPresence{
		ID:        driverID,
		Lat:       lat,
		Lng:       lng,
		IsDriving: isDriving,
		UpdatedAt: time.Now().UTC(),
	}
	_, err := s.drivers.ReplaceOne(ctx,
		bson.M{"_id": driverID},
		entry,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// UpsertMember overwrites a rider's last known position. The arrived flag
// is preserve-on-omit: a nil arrived leaves the stored value untouched,
// a non-nil value is written as given (an explicit false un-arrives).
func (s *Store) UpsertMember(ctx context.Context, memberID primitive.ObjectID, lat, lng float64, name string, arrived *bool) error {
	set := bson.M{
		"lat":        lat,
		"lng":        lng,
		"name":       name,
		"updated_at": time.Now().UTC(),
	}
	update := bson.M{"$set": set}
	if arrived != nil {
		set["arrived"] = *arrived
	} else {
		// First push for a member with no explicit flag starts not-arrived.
		update["$setOnInsert"] = bson.M{"arrived": false}
	}

	_, err := s.members.UpdateOne(ctx,
		bson.M{"_id": memberID},
		update,
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// MarkArrived sets the arrived flag for a member that already has a
// presence entry. The store computes no distances; the client calls this
// when its ETA estimate crosses the arrival threshold.
func (s *Store) MarkArrived(ctx context.Context, memberID primitive.ObjectID) error {
	res, err := s.members.UpdateOne(ctx,
		bson.M{"_id": memberID},
		bson.M{"$set": bson.M{"arrived": true, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return apperr.Internal(err)
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("no presence entry for that member")
	}
	return nil
}

// GetMember loads a rider's presence entry. Returns (nil, nil) when the
// member has never pushed a position.
func (s *Store) GetMember(ctx context.Context, memberID primitive.ObjectID) (*models.MemberPresence, error) {
	var entry models.MemberPresence
	err := s.members.FindOne(ctx, bson.M{"_id": memberID}).Decode(&entry)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &entry, nil
}

// ListAll returns every driver and member entry. The polling dashboard
// wants the whole picture, so this is a plain full scan of both
// collections.
func (s *Store) ListAll(ctx context.Context) ([]models.DriverPresence, []models.MemberPresence, error) {
	dcur, err := s.drivers.Find(ctx, bson.M{})
	if err != nil {
		return nil, nil, apperr.Internal(err)
	}
	defer dcur.Close(ctx)

	drivers := []models.DriverPresence{}
	if err := dcur.All(ctx, &drivers); err != nil {
		return nil, nil, apperr.Internal(err)
	}

	mcur, err := s.members.Find(ctx, bson.M{})
	if err != nil {
		return nil, nil, apperr.Internal(err)
	}
	defer mcur.Close(ctx)

	members := []models.MemberPresence{}
	if err := mcur.All(ctx, &members); err != nil {
		return nil, nil, apperr.Internal(err)
	}

	return drivers, members, nil
}

// DeleteStale removes entries not updated within the window. Used by the
// optional presence sweeper; with the sweeper disabled, entries are never
// deleted, only implicitly stale.
func (s *Store) DeleteStale(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan)
	filter := bson.M{"updated_at": bson.M{"$lt": cutoff}}

	dres, err := s.drivers.DeleteMany(ctx, filter)
	if err != nil {
		return 0, apperr.Internal(err)
	}
	mres, err := s.members.DeleteMany(ctx, filter)
	if err != nil {
		return dres.DeletedCount, apperr.Internal(err)
	}
	return dres.DeletedCount + mres.DeletedCount, nil
}
