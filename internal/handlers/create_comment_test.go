package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarpushin/photoshare/internal/models"
	"github.com/mkarpushin/photoshare/internal/services"
)

func TestCreateCommentHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	photoID := uuid.New()

	tests := []struct {
		name          string
		photoID       string
		text          string
		authorized    bool
		rawBody       bool
		mockSetup     func(m *MockCommentCreator)
		expectedCode  int
		expectedError string
	}{
		{
			name:       "success",
			photoID:    photoID.String(),
			text:       "Nice shot!",
			authorized: true,
			mockSetup: func(m *MockCommentCreator) {
				m.EXPECT().
					CreateComment(gomock.Any(), photoID, userID, "Nice shot!").
					Return(&models.Comment{
						CommentID:      uuid.New(),
						PhotoID:        photoID,
						UserID:         userID,
						AuthorUsername: "john",
						Text:           "Nice shot!",
					}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name:       "empty text",
			photoID:    photoID.String(),
			text:       "   ",
			authorized: true,
			mockSetup: func(m *MockCommentCreator) {
				m.EXPECT().
					CreateComment(gomock.Any(), photoID, userID, "   ").
					Return(nil, services.ErrEmptyCommentText)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Comment text must not be empty",
		},
		{
			name:       "photo not found",
			photoID:    photoID.String(),
			text:       "hello",
			authorized: true,
			mockSetup: func(m *MockCommentCreator) {
				m.EXPECT().
					CreateComment(gomock.Any(), photoID, userID, "hello").
					Return(nil, services.ErrPhotoNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Photo not found",
		},
		{
			name:          "malformed photo id",
			photoID:       "not-a-uuid",
			text:          "hello",
			authorized:    true,
			mockSetup:     func(m *MockCommentCreator) {},
			expectedCode:  http.StatusNotFound,
			expectedError: "Photo not found",
		},
		{
			name:          "unauthorized",
			photoID:       photoID.String(),
			text:          "hello",
			authorized:    false,
			mockSetup:     func(m *MockCommentCreator) {},
			expectedCode:  http.StatusUnauthorized,
			expectedError: "Unauthorized",
		},
		{
			name:          "invalid json",
			photoID:       photoID.String(),
			authorized:    true,
			rawBody:       true,
			mockSetup:     func(m *MockCommentCreator) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name:       "internal server error",
			photoID:    photoID.String(),
			text:       "hello",
			authorized: true,
			mockSetup: func(m *MockCommentCreator) {
				m.EXPECT().
					CreateComment(gomock.Any(), photoID, userID, "hello").
					Return(nil, errors.New("db down"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockCommentCreator(ctrl)
			tt.mockSetup(mockSvc)

			var tokener *MockClaimsTokener
			if tt.authorized {
				tokener = authedTokener(ctrl, userID)
			} else {
				tokener = deniedTokener(ctrl)
			}

			var body []byte
			if tt.rawBody {
				body = []byte(`{broken`)
			} else {
				body, _ = json.Marshal(CreateCommentRequest{Text: tt.text})
			}

			req := httptest.NewRequest(http.MethodPost, "/photos/"+tt.photoID+"/comments", bytes.NewReader(body))
			req = withURLParam(req, "photoID", tt.photoID)
			rec := httptest.NewRecorder()

			NewCreateCommentHandler(mockSvc, tokener)(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedError != "" {
				var resp CreateCommentErrorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}

			var resp CreateCommentResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, "john", resp.Comment.AuthorUsername)
			assert.Equal(t, tt.text, resp.Comment.Text)
		})
	}
}
