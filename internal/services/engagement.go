package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mkarpushin/photoshare/internal/logger"
	"github.com/mkarpushin/photoshare/internal/models"
)

var (
	// ErrEmptyCommentText is returned when a comment has no text.
	ErrEmptyCommentText = errors.New("comment text must not be empty")
)

// LikeWriter defines write operations for likes. Both operations are
// idempotent.
type LikeWriter interface {
	Save(ctx context.Context, photoID, userID uuid.UUID) error
	Delete(ctx context.Context, photoID, userID uuid.UUID) error
}

// LikeReader defines read operations for likes.
type LikeReader interface {
	CountByPhotoID(ctx context.Context, photoID uuid.UUID) (int64, error)
}

// CommentWriter defines write operations for comments.
type CommentWriter interface {
	Save(ctx context.Context, photoID, authorID uuid.UUID, text string) (*models.CommentDB, error)
}

// CommentReader defines read operations for comments.
type CommentReader interface {
	ListByPhotoID(ctx context.Context, photoID uuid.UUID) ([]models.Comment, error)
}

// UserGetter resolves a user by id for comment author enrichment.
type UserGetter interface {
	GetByID(ctx context.Context, userID uuid.UUID) (*models.UserDB, error)
}

// EngagementService handles likes and comments on photos.
type EngagementService struct {
	photoReader   PhotoReader
	likeWriter    LikeWriter
	likeReader    LikeReader
	commentWriter CommentWriter
	commentReader CommentReader
	userReader    UserGetter
	kafkaWriter   KafkaWriter
}

// NewEngagementService creates a new EngagementService. The Kafka writer
// may be nil, in which case event publishing is skipped.
func NewEngagementService(
	photoReader PhotoReader,
	likeWriter LikeWriter,
	likeReader LikeReader,
	commentWriter CommentWriter,
	commentReader CommentReader,
	userReader UserGetter,
	kafkaWriter KafkaWriter,
) *EngagementService {
	return &EngagementService{
		photoReader:   photoReader,
		likeWriter:    likeWriter,
		likeReader:    likeReader,
		commentWriter: commentWriter,
		commentReader: commentReader,
		userReader:    userReader,
		kafkaWriter:   kafkaWriter,
	}
}

// Like idempotently ensures the user's like exists on the photo and
// returns the current like count. Fails with ErrPhotoNotFound when the
// photo is absent.
func (s *EngagementService) Like(ctx context.Context, photoID, userID uuid.UUID) (int64, error) {
	exists, err := s.photoReader.Exists(ctx, photoID)
	if err != nil {
		logger.Log.Errorw("failed to check photo exists", "photo", photoID, "error", err)
		return 0, err
	}
	if !exists {
		return 0, ErrPhotoNotFound
	}

	if err := s.likeWriter.Save(ctx, photoID, userID); err != nil {
		logger.Log.Errorw("failed to save like", "photo", photoID, "user", userID, "error", err)
		return 0, err
	}

	count, err := s.likeReader.CountByPhotoID(ctx, photoID)
	if err != nil {
		logger.Log.Errorw("failed to count likes", "photo", photoID, "error", err)
		return 0, err
	}

	publishEvent(ctx, s.kafkaWriter, models.Event{
		EventID:   uuid.NewString(),
		Type:      models.EventPhotoLiked,
		Timestamp: time.Now().Unix(),
		UserID:    userID.String(),
		PhotoID:   photoID.String(),
	})

	return count, nil
}

// Unlike idempotently removes the user's like from the photo and returns
// the current like count. Absence of the like, or of the photo itself, is
// not an error.
func (s *EngagementService) Unlike(ctx context.Context, photoID, userID uuid.UUID) (int64, error) {
	if err := s.likeWriter.Delete(ctx, photoID, userID); err != nil {
		logger.Log.Errorw("failed to delete like", "photo", photoID, "user", userID, "error", err)
		return 0, err
	}

	count, err := s.likeReader.CountByPhotoID(ctx, photoID)
	if err != nil {
		logger.Log.Errorw("failed to count likes", "photo", photoID, "error", err)
		return 0, err
	}

	publishEvent(ctx, s.kafkaWriter, models.Event{
		EventID:   uuid.NewString(),
		Type:      models.EventPhotoUnliked,
		Timestamp: time.Now().Unix(),
		UserID:    userID.String(),
		PhotoID:   photoID.String(),
	})

	return count, nil
}

// CreateComment persists a comment and returns it enriched with the
// author's username.
func (s *EngagementService) CreateComment(ctx context.Context, photoID, authorID uuid.UUID, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyCommentText
	}

	exists, err := s.photoReader.Exists(ctx, photoID)
	if err != nil {
		logger.Log.Errorw("failed to check photo exists", "photo", photoID, "error", err)
		return nil, err
	}
	if !exists {
		return nil, ErrPhotoNotFound
	}

	saved, err := s.commentWriter.Save(ctx, photoID, authorID, text)
	if err != nil {
		logger.Log.Errorw("failed to save comment", "photo", photoID, "author", authorID, "error", err)
		return nil, err
	}

	author, err := s.userReader.GetByID(ctx, authorID)
	if err != nil {
		logger.Log.Errorw("failed to get comment author", "author", authorID, "error", err)
		return nil, err
	}

	comment := &models.Comment{
		CommentID: saved.CommentID,
		PhotoID:   saved.PhotoID,
		UserID:    saved.UserID,
		Text:      saved.Text,
		CreatedAt: saved.CreatedAt,
	}
	if author != nil {
		comment.AuthorUsername = author.Username
	}

	publishEvent(ctx, s.kafkaWriter, models.Event{
		EventID:   uuid.NewString(),
		Type:      models.EventCommentCreated,
		Timestamp: time.Now().Unix(),
		UserID:    authorID.String(),
		PhotoID:   photoID.String(),
	})

	return comment, nil
}

// ListComments returns the photo's comments ordered oldest-first. A photo
// with no comments, or no photo at all, yields an empty slice.
func (s *EngagementService) ListComments(ctx context.Context, photoID uuid.UUID) ([]models.Comment, error) {
	comments, err := s.commentReader.ListByPhotoID(ctx, photoID)
	if err != nil {
		logger.Log.Errorw("failed to list comments", "photo", photoID, "error", err)
		return nil, err
	}
	return comments, nil
}
