package models

import (
	"time"

	"github.com/google/uuid"
)

// LikeDB represents a like row in the database. At most one row exists
// per (photo_id, user_id) pair, enforced by the primary key.
type LikeDB struct {
	PhotoID   uuid.UUID `json:"photo_id" db:"photo_id"`     // Liked photo
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // User who liked it
	CreatedAt time.Time `json:"created_at" db:"created_at"` // When the like was placed
}
