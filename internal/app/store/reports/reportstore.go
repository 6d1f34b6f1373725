// internal/app/store/reports/reportstore.go
package reportstore

import (
	"context"
	"strings"
	"time"

	"github.com/dalemusser/ridehub/internal/app/system/apperr"
	"github.com/dalemusser/ridehub/internal/app/system/normalize"
	"github.com/dalemusser/ridehub/internal/app/system/sanitize"
	"github.com/dalemusser/ridehub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("reports")}
}

// Submit files a new report in pending status. The message is sanitized
// here so nothing unsafe ever reaches the collection, regardless of which
// caller wrote it.
func (s *Store) Submit(ctx context.Context, userID primitive.ObjectID, userName, reportType, message string) (*models.Report, error) {
	userName = normalize.Name(userName)
	reportType = strings.ToLower(strings.TrimSpace(reportType))
	message = sanitize.Message(message)

	if reportType == "" {
		return nil, apperr.Validation("type is required")
	}
	if message == "" {
		return nil, apperr.Validation("message is required")
	}

	report := models.Report{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		UserName:  userName,
		Type:      reportType,
		Message:   message,
		Status:    models.ReportPending,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, report); err != nil {
		return nil, apperr.Internal(err)
	}
	return &report, nil
}

// List returns all reports in collection order. Display order is the
// caller's concern.
func (s *Store) List(ctx context.Context) ([]models.Report, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	defer cur.Close(ctx)

	reports := []models.Report{}
	if err := cur.All(ctx, &reports); err != nil {
		return nil, apperr.Internal(err)
	}
	return reports, nil
}

// Resolve transitions a report to resolved. Resolving an already-resolved
// report is an idempotent no-op; an unknown id is NotFound.
func (s *Store) Resolve(ctx context.Context, id primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": models.ReportResolved}},
	)
	if err != nil {
		return apperr.Internal(err)
	}
	if res.MatchedCount == 0 {
		return apperr.NotFound("report not found")
	}
	return nil
}
