package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mkarpushin/photoshare/internal/models"
	"github.com/mkarpushin/photoshare/internal/services"
)

func TestRegisterHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	type requestBody struct {
		username string
		email    string
		password string
	}

	tests := []struct {
		name          string
		reqBody       requestBody
		mockSetup     func(m *MockRegisterer)
		expectedCode  int
		expectedError string
		rawBody       bool // if true, pass raw body (to simulate invalid JSON)
	}{
		{
			name: "success",
			reqBody: requestBody{
				username: "john",
				email:    "john@example.com",
				password: "secret",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john", "john@example.com", "secret").
					Return(&models.User{Username: "john", Email: "john@example.com"}, nil)
			},
			expectedCode: http.StatusCreated,
		},
		{
			name: "missing fields",
			reqBody: requestBody{
				username: "john",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "john", "", "").
					Return(nil, services.ErrMissingFields)
			},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Missing required field",
		},
		{
			name: "user already exists",
			reqBody: requestBody{
				username: "alice",
				email:    "alice@example.com",
				password: "pass",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "alice", "alice@example.com", "pass").
					Return(nil, services.ErrUserAlreadyExists)
			},
			expectedCode:  http.StatusConflict,
			expectedError: "Username or email already exists",
		},
		{
			name: "internal server error",
			reqBody: requestBody{
				username: "bob",
				email:    "bob@example.com",
				password: "pass",
			},
			mockSetup: func(m *MockRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob", "bob@example.com", "pass").
					Return(nil, errors.New("database failure"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
		{
			name:          "invalid json",
			rawBody:       true,
			mockSetup:     func(m *MockRegisterer) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockRegisterer(ctrl)
			tt.mockSetup(mockSvc)

			var body []byte
			if tt.rawBody {
				body = []byte(`{invalid json`)
			} else {
				body, _ = json.Marshal(RegisterRequest{
					Username: tt.reqBody.username,
					Email:    tt.reqBody.email,
					Password: tt.reqBody.password,
				})
			}

			req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
			rec := httptest.NewRecorder()

			NewRegisterHandler(mockSvc)(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedError != "" {
				var resp RegisterErrorResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}

			var resp RegisterResponse
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.reqBody.username, resp.User.Username)
		})
	}
}
