package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikeRepository_IdempotentSave(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	owner := seedUser(t, NewUserWriteRepository(db), "alice")
	liker := seedUser(t, NewUserWriteRepository(db), "bob")

	photo, err := NewPhotoWriteRepository(db, nil).Save(ctx, owner.UserID, "http://blobs/p.jpg", nil)
	assert.NoError(t, err)

	writeRepo := NewLikeWriteRepository(db, nil)
	readRepo := NewLikeReadRepository(db, nil)

	// Liking twice leaves the count at 1, not 2.
	assert.NoError(t, writeRepo.Save(ctx, photo.PhotoID, liker.UserID))
	assert.NoError(t, writeRepo.Save(ctx, photo.PhotoID, liker.UserID))

	count, err := readRepo.CountByPhotoID(ctx, photo.PhotoID)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// A second user raises it to 2.
	assert.NoError(t, writeRepo.Save(ctx, photo.PhotoID, owner.UserID))

	count, err = readRepo.CountByPhotoID(ctx, photo.PhotoID)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestLikeRepository_IdempotentDelete(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	owner := seedUser(t, NewUserWriteRepository(db), "carol")
	liker := seedUser(t, NewUserWriteRepository(db), "dave")

	photo, err := NewPhotoWriteRepository(db, nil).Save(ctx, owner.UserID, "http://blobs/q.jpg", nil)
	assert.NoError(t, err)

	writeRepo := NewLikeWriteRepository(db, nil)
	readRepo := NewLikeReadRepository(db, nil)

	// Unliking a photo the user never liked succeeds and changes nothing.
	assert.NoError(t, writeRepo.Delete(ctx, photo.PhotoID, liker.UserID))

	count, err := readRepo.CountByPhotoID(ctx, photo.PhotoID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)

	assert.NoError(t, writeRepo.Save(ctx, photo.PhotoID, liker.UserID))
	assert.NoError(t, writeRepo.Delete(ctx, photo.PhotoID, liker.UserID))
	assert.NoError(t, writeRepo.Delete(ctx, photo.PhotoID, liker.UserID))

	count, err = readRepo.CountByPhotoID(ctx, photo.PhotoID)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
