package models

// Event types published to Kafka.
const (
	EventPhotoUploaded  = "photo.uploaded"
	EventPhotoLiked     = "photo.liked"
	EventPhotoUnliked   = "photo.unliked"
	EventCommentCreated = "comment.created"
)

// Event is a domain event published to Kafka. Publishing is best-effort:
// a failed publish is logged and never fails the request.
type Event struct {
	EventID   string `json:"event_id"`           // Unique event identifier
	Type      string `json:"type"`               // One of the Event* constants
	Timestamp int64  `json:"timestamp"`          // Unix timestamp
	UserID    string `json:"user_id"`            // Acting user
	PhotoID   string `json:"photo_id,omitempty"` // Affected photo, if any
}
