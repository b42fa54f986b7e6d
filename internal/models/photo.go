package models

import (
	"time"

	"github.com/google/uuid"
)

// PhotoDB represents a photo row in the database.
type PhotoDB struct {
	PhotoID   uuid.UUID `json:"photo_id" db:"photo_id"`     // Primary key
	UserID    uuid.UUID `json:"user_id" db:"user_id"`       // Identifier of the photo's owner
	URL       string    `json:"url" db:"url"`               // Opaque reference to the stored blob
	Caption   *string   `json:"caption" db:"caption"`       // Optional caption
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Upload timestamp
}

// Photo is a photo enriched with owner identity and like count,
// as returned by the API. Like counts are computed at read time.
type Photo struct {
	PhotoID       uuid.UUID `json:"photo_id" db:"photo_id"`
	UserID        uuid.UUID `json:"user_id" db:"user_id"`
	OwnerUsername string    `json:"owner_username" db:"owner_username"`
	URL           string    `json:"url" db:"url"`
	Caption       *string   `json:"caption" db:"caption"`
	LikesCount    int64     `json:"likes_count" db:"likes_count"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// PhotoPage is a page of photos ordered newest-first.
type PhotoPage struct {
	Page  int     `json:"page"`  // 1-based page number
	Limit int     `json:"limit"` // Page size
	Total int64   `json:"total"` // Full unfiltered photo count
	Items []Photo `json:"items"` // Photos on this page
}
