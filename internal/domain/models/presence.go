// internal/domain/models/presence.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DriverPresence is the last known position of a driver. The document id is
// the driver's user id, so every push is a single-document overwrite.
type DriverPresence struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Lat       float64            `bson:"lat" json:"lat"`
	Lng       float64            `bson:"lng" json:"lng"`
	IsDriving bool               `bson:"is_driving" json:"is_driving"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// MemberPresence is the last known position of a rider. Arrived is only
// changed when a push supplies it explicitly; a push that omits the flag
// preserves the stored value.
type MemberPresence struct {
	ID        primitive.ObjectID `bson:"_id" json:"id"`
	Lat       float64            `bson:"lat" json:"lat"`
	Lng       float64            `bson:"lng" json:"lng"`
	Name      string             `bson:"name" json:"name"`
	Arrived   bool               `bson:"arrived" json:"arrived"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}
