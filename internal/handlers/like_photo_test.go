package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarpushin/photoshare/internal/services"
)

func TestLikePhotoHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	photoID := uuid.New()

	tests := []struct {
		name          string
		photoID       string
		authorized    bool
		mockSetup     func(m *MockLiker)
		expectedCode  int
		expectedCount int64
	}{
		{
			name:       "success",
			photoID:    photoID.String(),
			authorized: true,
			mockSetup: func(m *MockLiker) {
				m.EXPECT().Like(gomock.Any(), photoID, userID).Return(int64(4), nil)
			},
			expectedCode:  http.StatusOK,
			expectedCount: 4,
		},
		{
			name:       "photo not found",
			photoID:    photoID.String(),
			authorized: true,
			mockSetup: func(m *MockLiker) {
				m.EXPECT().Like(gomock.Any(), photoID, userID).Return(int64(0), services.ErrPhotoNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "malformed photo id",
			photoID:      "not-a-uuid",
			authorized:   true,
			mockSetup:    func(m *MockLiker) {},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "unauthorized",
			photoID:      photoID.String(),
			authorized:   false,
			mockSetup:    func(m *MockLiker) {},
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:       "internal server error",
			photoID:    photoID.String(),
			authorized: true,
			mockSetup: func(m *MockLiker) {
				m.EXPECT().Like(gomock.Any(), photoID, userID).Return(int64(0), errors.New("db down"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockLiker(ctrl)
			tt.mockSetup(mockSvc)

			var tokener *MockClaimsTokener
			if tt.authorized {
				tokener = authedTokener(ctrl, userID)
			} else {
				tokener = deniedTokener(ctrl)
			}

			req := httptest.NewRequest(http.MethodPost, "/photos/"+tt.photoID+"/like", nil)
			req = withURLParam(req, "photoID", tt.photoID)
			rec := httptest.NewRecorder()

			NewLikePhotoHandler(mockSvc, tokener)(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedCode == http.StatusOK {
				var resp LikeResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedCount, resp.LikesCount)
			}
		})
	}
}
