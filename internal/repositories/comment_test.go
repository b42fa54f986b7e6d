package repositories

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCommentWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	owner := seedUser(t, NewUserWriteRepository(db), "alice")
	author := seedUser(t, NewUserWriteRepository(db), "bob")

	photo, err := NewPhotoWriteRepository(db, nil).Save(ctx, owner.UserID, "http://blobs/p.jpg", nil)
	assert.NoError(t, err)

	repo := NewCommentWriteRepository(db, nil)

	comment, err := repo.Save(ctx, photo.PhotoID, author.UserID, "nice shot")
	assert.NoError(t, err)
	assert.NotNil(t, comment)
	assert.Equal(t, photo.PhotoID, comment.PhotoID)
	assert.Equal(t, author.UserID, comment.UserID)
	assert.Equal(t, "nice shot", comment.Text)

	// Comments against a nonexistent photo violate the foreign key.
	_, err = repo.Save(ctx, uuid.New(), author.UserID, "orphan")
	assert.Error(t, err)
}

func TestCommentReadRepository_ListByPhotoID(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	owner := seedUser(t, NewUserWriteRepository(db), "carol")

	photo, err := NewPhotoWriteRepository(db, nil).Save(ctx, owner.UserID, "http://blobs/q.jpg", nil)
	assert.NoError(t, err)

	readRepo := NewCommentReadRepository(db)

	t.Run("EmptyWhenNoComments", func(t *testing.T) {
		comments, err := readRepo.ListByPhotoID(ctx, photo.PhotoID)
		assert.NoError(t, err)
		assert.Empty(t, comments)
	})

	t.Run("EmptyWhenPhotoMissing", func(t *testing.T) {
		comments, err := readRepo.ListByPhotoID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Empty(t, comments)
	})

	t.Run("OldestFirst", func(t *testing.T) {
		// Distinct timestamps so oldest-first ordering is deterministic.
		for i, text := range []string{"first", "second", "third"} {
			_, err := db.ExecContext(ctx, `
				INSERT INTO comments (comment_id, photo_id, user_id, text, created_at)
				VALUES ($1, $2, $3, $4, NOW() + make_interval(secs => $5))
			`, uuid.New(), photo.PhotoID, owner.UserID, text, i)
			assert.NoError(t, err)
		}

		comments, err := readRepo.ListByPhotoID(ctx, photo.PhotoID)
		assert.NoError(t, err)
		assert.Len(t, comments, 3)
		assert.Equal(t, "first", comments[0].Text)
		assert.Equal(t, "third", comments[2].Text)
		assert.Equal(t, "carol", comments[0].AuthorUsername)
	})
}
