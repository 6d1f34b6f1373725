// internal/domain/models/cluster.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cluster is a named group of one driver and its riders, identified by a
// short join code.
//
// Codes are stored uppercase and carry a unique index; lookups fold the
// caller's input so joining is case-insensitive. DriverID also carries a
// unique index: one cluster per driver is a storage-level invariant, not
// an application-level assumption.
type Cluster struct {
	ID        primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name      string               `bson:"name" json:"name"`
	Code      string               `bson:"code" json:"code"`
	DriverID  primitive.ObjectID   `bson:"driver_id" json:"driver_id"`
	MemberIDs []primitive.ObjectID `bson:"member_ids" json:"member_ids"`
	Capacity  int                  `bson:"capacity" json:"capacity"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
