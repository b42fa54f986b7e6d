package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"

	"github.com/mkarpushin/photoshare/internal/logger"
	"github.com/mkarpushin/photoshare/internal/models"
)

var (
	// ErrPhotoNotFound is returned when a referenced photo does not exist.
	ErrPhotoNotFound = errors.New("photo not found")
)

// Pagination defaults applied when page or limit are missing or unparsable.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// PhotoWriter defines write operations for photos.
type PhotoWriter interface {
	Save(ctx context.Context, ownerID uuid.UUID, url string, caption *string) (*models.PhotoDB, error)
}

// PhotoReader defines read operations for photos.
type PhotoReader interface {
	List(ctx context.Context, limit, offset int) ([]models.Photo, error)
	Count(ctx context.Context) (int64, error)
	GetByID(ctx context.Context, photoID uuid.UUID) (*models.Photo, error)
	Exists(ctx context.Context, photoID uuid.UUID) (bool, error)
}

// BlobPutter stores an uploaded image and returns its public URL.
type BlobPutter interface {
	Put(ctx context.Context, r io.Reader, size int64, filename, contentType string) (string, error)
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// PhotoService handles photo upload, listing, and retrieval.
type PhotoService struct {
	writeRepo   PhotoWriter
	readRepo    PhotoReader
	blobs       BlobPutter
	kafkaWriter KafkaWriter
}

// NewPhotoService creates a new PhotoService. The Kafka writer may be nil,
// in which case event publishing is skipped.
func NewPhotoService(writeRepo PhotoWriter, readRepo PhotoReader, blobs BlobPutter, kafkaWriter KafkaWriter) *PhotoService {
	return &PhotoService{
		writeRepo:   writeRepo,
		readRepo:    readRepo,
		blobs:       blobs,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a domain event to Kafka. Best-effort: failures
// are logged and never fail the request.
func publishEvent(ctx context.Context, writer KafkaWriter, event models.Event) {
	if writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_type", event.Type)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "type", event.Type)
	}
}

// Upload stores the image blob under a generated name, persists the photo,
// and publishes an event. The blob content is trusted upstream and not
// validated here.
func (s *PhotoService) Upload(ctx context.Context, ownerID uuid.UUID, file io.Reader, size int64, filename, contentType string, caption *string) (*models.PhotoDB, error) {
	url, err := s.blobs.Put(ctx, file, size, filename, contentType)
	if err != nil {
		logger.Log.Errorw("failed to store photo blob", "owner", ownerID, "error", err)
		return nil, err
	}

	photo, err := s.writeRepo.Save(ctx, ownerID, url, caption)
	if err != nil {
		logger.Log.Errorw("failed to save photo", "owner", ownerID, "error", err)
		return nil, err
	}

	publishEvent(ctx, s.kafkaWriter, models.Event{
		EventID:   uuid.NewString(),
		Type:      models.EventPhotoUploaded,
		Timestamp: time.Now().Unix(),
		UserID:    ownerID.String(),
		PhotoID:   photo.PhotoID.String(),
	})

	return photo, nil
}

// List returns a page of photos ordered newest-first. Pages are 1-based;
// non-positive page or limit fall back to the defaults.
func (s *PhotoService) List(ctx context.Context, page, limit int) (*models.PhotoPage, error) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 {
		limit = DefaultLimit
	}

	photos, err := s.readRepo.List(ctx, limit, (page-1)*limit)
	if err != nil {
		logger.Log.Errorw("failed to list photos", "page", page, "limit", limit, "error", err)
		return nil, err
	}

	total, err := s.readRepo.Count(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count photos", "error", err)
		return nil, err
	}

	return &models.PhotoPage{
		Page:  page,
		Limit: limit,
		Total: total,
		Items: photos,
	}, nil
}

// Get returns a single photo or ErrPhotoNotFound.
func (s *PhotoService) Get(ctx context.Context, photoID uuid.UUID) (*models.Photo, error) {
	photo, err := s.readRepo.GetByID(ctx, photoID)
	if err != nil {
		logger.Log.Errorw("failed to get photo", "photo", photoID, "error", err)
		return nil, err
	}
	if photo == nil {
		return nil, ErrPhotoNotFound
	}
	return photo, nil
}
