package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mkarpushin/photoshare/internal/logger"
	"github.com/mkarpushin/photoshare/internal/models"
)

// CommentWriteRepository handles comment write operations.
type CommentWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewCommentWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *CommentWriteRepository {
	return &CommentWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new comment and returns the stored row.
func (r *CommentWriteRepository) Save(ctx context.Context, photoID, authorID uuid.UUID, text string) (*models.CommentDB, error) {
	const query = `
		INSERT INTO comments (comment_id, photo_id, user_id, text, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING comment_id, photo_id, user_id, text, created_at
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var comment models.CommentDB
	err := sqlx.GetContext(ctx, executor, &comment, query, uuid.New(), photoID, authorID, text)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{photoID, authorID},
		"result", comment.CommentID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &comment, nil
}

// CommentReadRepository handles comment read operations.
type CommentReadRepository struct {
	db *sqlx.DB
}

func NewCommentReadRepository(db *sqlx.DB) *CommentReadRepository {
	return &CommentReadRepository{db: db}
}

// ListByPhotoID returns the photo's comments ordered oldest-first, each
// enriched with the author's username. A photo with no comments, or no
// photo at all, yields an empty slice.
func (r *CommentReadRepository) ListByPhotoID(ctx context.Context, photoID uuid.UUID) ([]models.Comment, error) {
	const query = `
		SELECT c.comment_id,
		       c.photo_id,
		       c.user_id,
		       u.username AS author_username,
		       c.text,
		       c.created_at
		FROM comments c
		JOIN users u ON u.user_id = c.user_id
		WHERE c.photo_id = $1
		ORDER BY c.created_at ASC
	`

	comments := []models.Comment{}
	err := r.db.SelectContext(ctx, &comments, query, photoID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{photoID},
		"result", len(comments),
		"error", err,
	)

	return comments, err
}
