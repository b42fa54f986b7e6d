package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/mkarpushin/photoshare/internal/logger"
)

// LikeWriteRepository handles like write operations.
type LikeWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewLikeWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *LikeWriteRepository {
	return &LikeWriteRepository{db: db, txGetter: txGetter}
}

// Save ensures a like exists for the (photo, user) pair. Re-liking is a
// no-op, so concurrent duplicate calls are safe.
func (r *LikeWriteRepository) Save(ctx context.Context, photoID, userID uuid.UUID) error {
	const query = `
		INSERT INTO likes (photo_id, user_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (photo_id, user_id) DO NOTHING
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := executor.ExecContext(ctx, query, photoID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{photoID, userID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// Delete removes the like for the (photo, user) pair if present. Absence
// is not an error.
func (r *LikeWriteRepository) Delete(ctx context.Context, photoID, userID uuid.UUID) error {
	const query = `
		DELETE FROM likes
		WHERE photo_id = $1 AND user_id = $2
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := executor.ExecContext(ctx, query, photoID, userID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{photoID, userID},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// LikeReadRepository handles like read operations. It takes the same
// txGetter as the write side so a count issued right after a like or
// unlike observes the uncommitted change.
type LikeReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewLikeReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *LikeReadRepository {
	return &LikeReadRepository{db: db, txGetter: txGetter}
}

// CountByPhotoID returns the current like count for a photo. A photo with
// no likes, or no photo at all, both count as zero.
func (r *LikeReadRepository) CountByPhotoID(ctx context.Context, photoID uuid.UUID) (int64, error) {
	const query = `SELECT COUNT(*) FROM likes WHERE photo_id = $1`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	var count int64
	err := sqlx.GetContext(ctx, executor, &count, query, photoID)

	logger.Log.Infow(
		"query", query,
		"args", []any{photoID},
		"result", count,
		"error", err,
	)

	return count, err
}
