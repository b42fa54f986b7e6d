package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mkarpushin/photoshare/internal/logger"
	"github.com/mkarpushin/photoshare/internal/models"
)

// PhotoWriteRepository handles photo write operations.
type PhotoWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewPhotoWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *PhotoWriteRepository {
	return &PhotoWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new photo and returns the stored row.
func (r *PhotoWriteRepository) Save(ctx context.Context, ownerID uuid.UUID, url string, caption *string) (*models.PhotoDB, error) {
	const query = `
		INSERT INTO photos (photo_id, user_id, url, caption, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING photo_id, user_id, url, caption, created_at
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var photo models.PhotoDB
	err := sqlx.GetContext(ctx, executor, &photo, query, uuid.New(), ownerID, url, caption)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{ownerID, url, caption},
		"result", photo.PhotoID,
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &photo, nil
}

// PhotoReadRepository handles photo read operations.
type PhotoReadRepository struct {
	db *sqlx.DB
}

func NewPhotoReadRepository(db *sqlx.DB) *PhotoReadRepository {
	return &PhotoReadRepository{db: db}
}

// List returns photos ordered newest-first, enriched with owner username
// and like count. Counts come from a correlated subquery on every call;
// a known scaling limitation, deliberately not cached.
func (r *PhotoReadRepository) List(ctx context.Context, limit, offset int) ([]models.Photo, error) {
	const query = `
		SELECT p.photo_id,
		       p.user_id,
		       u.username AS owner_username,
		       p.url,
		       p.caption,
		       (SELECT COUNT(*) FROM likes l WHERE l.photo_id = p.photo_id) AS likes_count,
		       p.created_at
		FROM photos p
		JOIN users u ON u.user_id = p.user_id
		ORDER BY p.created_at DESC
		LIMIT $1 OFFSET $2
	`

	photos := []models.Photo{}
	err := r.db.SelectContext(ctx, &photos, query, limit, offset)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit, offset},
		"result", len(photos),
		"error", err,
	)

	return photos, err
}

// Count returns the full unfiltered photo count.
func (r *PhotoReadRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM photos`

	var total int64
	err := r.db.GetContext(ctx, &total, query)

	logger.Log.Infow(
		"query", query,
		"result", total,
		"error", err,
	)

	return total, err
}

// GetByID returns a single photo enriched with owner username and like
// count, or nil when absent.
func (r *PhotoReadRepository) GetByID(ctx context.Context, photoID uuid.UUID) (*models.Photo, error) {
	const query = `
		SELECT p.photo_id,
		       p.user_id,
		       u.username AS owner_username,
		       p.url,
		       p.caption,
		       (SELECT COUNT(*) FROM likes l WHERE l.photo_id = p.photo_id) AS likes_count,
		       p.created_at
		FROM photos p
		JOIN users u ON u.user_id = p.user_id
		WHERE p.photo_id = $1
	`

	var photo models.Photo
	err := r.db.GetContext(ctx, &photo, query, photoID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{photoID},
		"result", photo.PhotoID,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &photo, nil
}

// Exists reports whether a photo with the given id exists.
func (r *PhotoReadRepository) Exists(ctx context.Context, photoID uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM photos WHERE photo_id = $1)`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, photoID)

	logger.Log.Infow(
		"query", query,
		"args", []any{photoID},
		"result", exists,
		"error", err,
	)

	return exists, err
}
