// internal/domain/models/attendance.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attendance statuses. Absence of a record means "undeclared", which is
// distinct from StatusNotComing.
const (
	StatusComing    = "coming"
	StatusNotComing = "not_coming"
)

// Attendance is a rider's per-day declaration of intent to join a trip.
// Exactly one document per (user_id, cluster_id, day); a new submission
// overwrites the prior one. Day is a UTC "YYYY-MM-DD" string, so records
// expire naturally on day rollover with no cleanup.
type Attendance struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"user_id"`
	ClusterID primitive.ObjectID `bson:"cluster_id" json:"cluster_id"`
	Day       string             `bson:"day" json:"day"`
	Status    string             `bson:"status" json:"status"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
