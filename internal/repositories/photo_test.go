package repositories

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mkarpushin/photoshare/internal/models"
)

func seedUser(t *testing.T, repo *UserWriteRepository, username string) *models.UserDB {
	t.Helper()
	user, err := repo.Save(context.Background(), username, username+"@example.com", "hash")
	assert.NoError(t, err)
	return user
}

func TestPhotoWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	owner := seedUser(t, NewUserWriteRepository(db), "alice")

	repo := NewPhotoWriteRepository(db, nil)

	caption := "sunset"
	photo, err := repo.Save(ctx, owner.UserID, "http://blobs/photos/1.jpg", &caption)
	assert.NoError(t, err)
	assert.NotNil(t, photo)
	assert.Equal(t, owner.UserID, photo.UserID)
	assert.Equal(t, "http://blobs/photos/1.jpg", photo.URL)
	assert.Equal(t, "sunset", *photo.Caption)

	// Caption is optional.
	photo2, err := repo.Save(ctx, owner.UserID, "http://blobs/photos/2.jpg", nil)
	assert.NoError(t, err)
	assert.Nil(t, photo2.Caption)
}

func TestPhotoReadRepository_ListAndCount(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	owner := seedUser(t, NewUserWriteRepository(db), "bob")

	writeRepo := NewPhotoWriteRepository(db, nil)
	readRepo := NewPhotoReadRepository(db)

	var ids []uuid.UUID
	for i := 0; i < 12; i++ {
		// Distinct timestamps so newest-first ordering is deterministic.
		var photo models.PhotoDB
		err := db.GetContext(ctx, &photo, `
			INSERT INTO photos (photo_id, user_id, url, caption, created_at)
			VALUES ($1, $2, $3, NULL, NOW() + make_interval(secs => $4))
			RETURNING photo_id, user_id, url, caption, created_at
		`, uuid.New(), owner.UserID, fmt.Sprintf("http://blobs/photos/%d.jpg", i), i)
		assert.NoError(t, err)
		ids = append(ids, photo.PhotoID)
	}
	_ = writeRepo

	t.Run("FirstPage", func(t *testing.T) {
		photos, err := readRepo.List(ctx, 5, 0)
		assert.NoError(t, err)
		assert.Len(t, photos, 5)
		// Newest first: the last insert leads.
		assert.Equal(t, ids[11], photos[0].PhotoID)
		assert.Equal(t, "bob", photos[0].OwnerUsername)
	})

	t.Run("SecondPage", func(t *testing.T) {
		photos, err := readRepo.List(ctx, 5, 5)
		assert.NoError(t, err)
		assert.Len(t, photos, 5)
		// Items ranked 6-10 by recency.
		assert.Equal(t, ids[6], photos[0].PhotoID)
		assert.Equal(t, ids[2], photos[4].PhotoID)
	})

	t.Run("Total", func(t *testing.T) {
		total, err := readRepo.Count(ctx)
		assert.NoError(t, err)
		assert.Equal(t, int64(12), total)
	})
}

func TestPhotoReadRepository_GetByID(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	owner := seedUser(t, NewUserWriteRepository(db), "carol")

	writeRepo := NewPhotoWriteRepository(db, nil)
	readRepo := NewPhotoReadRepository(db)
	likeRepo := NewLikeWriteRepository(db, nil)

	saved, err := writeRepo.Save(ctx, owner.UserID, "http://blobs/photos/x.jpg", nil)
	assert.NoError(t, err)

	assert.NoError(t, likeRepo.Save(ctx, saved.PhotoID, owner.UserID))

	photo, err := readRepo.GetByID(ctx, saved.PhotoID)
	assert.NoError(t, err)
	assert.NotNil(t, photo)
	assert.Equal(t, "carol", photo.OwnerUsername)
	assert.Equal(t, int64(1), photo.LikesCount)

	missing, err := readRepo.GetByID(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestPhotoReadRepository_Exists(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	owner := seedUser(t, NewUserWriteRepository(db), "dana")

	writeRepo := NewPhotoWriteRepository(db, nil)
	readRepo := NewPhotoReadRepository(db)

	saved, err := writeRepo.Save(ctx, owner.UserID, "http://blobs/photos/y.jpg", nil)
	assert.NoError(t, err)

	exists, err := readRepo.Exists(ctx, saved.PhotoID)
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = readRepo.Exists(ctx, uuid.New())
	assert.NoError(t, err)
	assert.False(t, exists)
}
