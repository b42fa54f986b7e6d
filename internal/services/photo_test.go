package services_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/mkarpushin/photoshare/internal/models"
	"github.com/mkarpushin/photoshare/internal/services"
)

func TestPhotoService_Upload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ownerID := uuid.New()
	caption := "sunset"
	file := bytes.NewBufferString("image-bytes")

	t.Run("success with event", func(t *testing.T) {
		mockWriter := services.NewMockPhotoWriter(ctrl)
		mockReader := services.NewMockPhotoReader(ctrl)
		mockBlobs := services.NewMockBlobPutter(ctrl)
		mockKafka := services.NewMockKafkaWriter(ctrl)

		svc := services.NewPhotoService(mockWriter, mockReader, mockBlobs, mockKafka)

		mockBlobs.EXPECT().
			Put(gomock.Any(), file, int64(11), "sunset.jpg", "image/jpeg").
			Return("http://blobs/photos/123-abc.jpg", nil)
		mockWriter.EXPECT().
			Save(gomock.Any(), ownerID, "http://blobs/photos/123-abc.jpg", &caption).
			Return(&models.PhotoDB{PhotoID: uuid.New(), UserID: ownerID, URL: "http://blobs/photos/123-abc.jpg", Caption: &caption}, nil)
		mockKafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			Return(nil)

		photo, err := svc.Upload(context.Background(), ownerID, file, 11, "sunset.jpg", "image/jpeg", &caption)
		assert.NoError(t, err)
		assert.Equal(t, ownerID, photo.UserID)
	})

	t.Run("blob store error", func(t *testing.T) {
		mockWriter := services.NewMockPhotoWriter(ctrl)
		mockReader := services.NewMockPhotoReader(ctrl)
		mockBlobs := services.NewMockBlobPutter(ctrl)

		svc := services.NewPhotoService(mockWriter, mockReader, mockBlobs, nil)

		mockBlobs.EXPECT().
			Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("storage down"))

		_, err := svc.Upload(context.Background(), ownerID, file, 11, "a.jpg", "image/jpeg", nil)
		assert.EqualError(t, err, "storage down")
	})

	t.Run("kafka failure does not fail the upload", func(t *testing.T) {
		mockWriter := services.NewMockPhotoWriter(ctrl)
		mockReader := services.NewMockPhotoReader(ctrl)
		mockBlobs := services.NewMockBlobPutter(ctrl)
		mockKafka := services.NewMockKafkaWriter(ctrl)

		svc := services.NewPhotoService(mockWriter, mockReader, mockBlobs, mockKafka)

		mockBlobs.EXPECT().
			Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("http://blobs/photos/x.jpg", nil)
		mockWriter.EXPECT().
			Save(gomock.Any(), ownerID, "http://blobs/photos/x.jpg", gomock.Nil()).
			Return(&models.PhotoDB{PhotoID: uuid.New(), UserID: ownerID}, nil)
		mockKafka.EXPECT().
			WriteMessages(gomock.Any(), gomock.Any()).
			Return(errors.New("broker unreachable"))

		_, err := svc.Upload(context.Background(), ownerID, file, 11, "x.jpg", "image/jpeg", nil)
		assert.NoError(t, err)
	})
}

func TestPhotoService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name       string
		page       int
		limit      int
		wantPage   int
		wantLimit  int
		wantOffset int
	}{
		{name: "explicit paging", page: 2, limit: 5, wantPage: 2, wantLimit: 5, wantOffset: 5},
		{name: "defaults applied", page: 0, limit: 0, wantPage: 1, wantLimit: 10, wantOffset: 0},
		{name: "negative values fall back", page: -3, limit: -1, wantPage: 1, wantLimit: 10, wantOffset: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockPhotoReader(ctrl)
			svc := services.NewPhotoService(services.NewMockPhotoWriter(ctrl), mockReader, services.NewMockBlobPutter(ctrl), nil)

			items := []models.Photo{{PhotoID: uuid.New()}}
			mockReader.EXPECT().List(gomock.Any(), tt.wantLimit, tt.wantOffset).Return(items, nil)
			mockReader.EXPECT().Count(gomock.Any()).Return(int64(42), nil)

			page, err := svc.List(context.Background(), tt.page, tt.limit)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantPage, page.Page)
			assert.Equal(t, tt.wantLimit, page.Limit)
			assert.Equal(t, int64(42), page.Total)
			assert.Equal(t, items, page.Items)
		})
	}
}

func TestPhotoService_List_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockPhotoReader(ctrl)
	svc := services.NewPhotoService(services.NewMockPhotoWriter(ctrl), mockReader, services.NewMockBlobPutter(ctrl), nil)

	mockReader.EXPECT().List(gomock.Any(), 10, 0).Return(nil, errors.New("db error"))

	_, err := svc.List(context.Background(), 1, 10)
	assert.EqualError(t, err, "db error")
}

func TestPhotoService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	photoID := uuid.New()

	t.Run("found", func(t *testing.T) {
		mockReader := services.NewMockPhotoReader(ctrl)
		svc := services.NewPhotoService(services.NewMockPhotoWriter(ctrl), mockReader, services.NewMockBlobPutter(ctrl), nil)

		mockReader.EXPECT().GetByID(gomock.Any(), photoID).Return(&models.Photo{PhotoID: photoID}, nil)

		photo, err := svc.Get(context.Background(), photoID)
		assert.NoError(t, err)
		assert.Equal(t, photoID, photo.PhotoID)
	})

	t.Run("not found", func(t *testing.T) {
		mockReader := services.NewMockPhotoReader(ctrl)
		svc := services.NewPhotoService(services.NewMockPhotoWriter(ctrl), mockReader, services.NewMockBlobPutter(ctrl), nil)

		mockReader.EXPECT().GetByID(gomock.Any(), photoID).Return(nil, nil)

		_, err := svc.Get(context.Background(), photoID)
		assert.ErrorIs(t, err, services.ErrPhotoNotFound)
	})
}
