// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents riders, drivers, and operators.
//
// NOTE:
//   - ClusterCode is a denormalized stamp of the cluster a user belongs to
//     (or owns, for drivers). The clusters collection is authoritative for
//     membership; the stamp exists so "which cluster am I in?" is a single
//     document read.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName     string             `bson:"full_name" json:"full_name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Role         string             `bson:"role" json:"role"` // rider | driver | operator
	Capacity     int                `bson:"capacity,omitempty" json:"capacity,omitempty"`
	ClusterCode  string             `bson:"cluster_code,omitempty" json:"cluster_code,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
