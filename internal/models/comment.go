package models

import (
	"time"

	"github.com/google/uuid"
)

// CommentDB represents a comment row in the database.
type CommentDB struct {
	CommentID uuid.UUID `json:"comment_id" db:"comment_id"` // Primary key
	PhotoID   uuid.UUID `json:"photo_id" db:"photo_id"`     // Photo the comment belongs to
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Comment author
	Text      string    `json:"text" db:"text"`             // Comment text, never empty
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// Comment is a comment enriched with author identity, as returned by the API.
type Comment struct {
	CommentID      uuid.UUID `json:"comment_id" db:"comment_id"`
	PhotoID        uuid.UUID `json:"photo_id" db:"photo_id"`
	UserID         uuid.UUID `json:"user_id" db:"user_id"`
	AuthorUsername string    `json:"author_username" db:"author_username"`
	Text           string    `json:"text" db:"text"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
