package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/mkarpushin/photoshare/internal/models"
	"github.com/mkarpushin/photoshare/internal/services"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name      string
		username  string
		email     string
		password  string
		exists    bool
		readerErr error
		writerErr error
		wantErr   error
	}{
		{
			name:     "successful registration",
			username: "alice",
			email:    "alice@example.com",
			password: "pw123",
		},
		{
			name:     "duplicate username or email",
			username: "bob",
			email:    "a@x.com",
			password: "pw456",
			exists:   true,
			wantErr:  services.ErrUserAlreadyExists,
		},
		{
			name:      "reader error",
			username:  "eve",
			email:     "eve@example.com",
			password:  "pw123",
			readerErr: errors.New("db error"),
			wantErr:   errors.New("db error"),
		},
		{
			name:      "writer error",
			username:  "carol",
			email:     "carol@example.com",
			password:  "pw123",
			writerErr: errors.New("save error"),
			wantErr:   errors.New("save error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockReader := services.NewMockUserReader(ctrl)
			mockWriter := services.NewMockUserWriter(ctrl)
			mockJWT := services.NewMockJWTGenerator(ctrl)

			svc := services.NewAuthService(mockReader, mockWriter, mockJWT, nil)

			mockReader.EXPECT().
				ExistsByUsernameOrEmail(gomock.Any(), tt.username, tt.email).
				Return(tt.exists, tt.readerErr)

			if !tt.exists && tt.readerErr == nil {
				if tt.writerErr != nil {
					mockWriter.EXPECT().
						Save(gomock.Any(), tt.username, tt.email, gomock.Any()).
						Return(nil, tt.writerErr)
				} else {
					mockWriter.EXPECT().
						Save(gomock.Any(), tt.username, tt.email, gomock.Any()).
						DoAndReturn(func(_ context.Context, username, email, passwordHash string) (*models.UserDB, error) {
							// The service must store a hash, not the plaintext.
							assert.NotEqual(t, tt.password, passwordHash)
							assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(tt.password)))
							return &models.UserDB{
								UserID:       uuid.New(),
								Username:     username,
								Email:        email,
								PasswordHash: passwordHash,
							}, nil
						})
				}
			}

			user, err := svc.Register(context.Background(), tt.username, tt.email, tt.password)
			if tt.wantErr != nil {
				assert.EqualError(t, err, tt.wantErr.Error())
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.username, user.Username)
				assert.Equal(t, tt.email, user.Email)
			}
		})
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := services.NewAuthService(
		services.NewMockUserReader(ctrl),
		services.NewMockUserWriter(ctrl),
		services.NewMockJWTGenerator(ctrl),
		nil,
	)

	_, err := svc.Register(context.Background(), "", "a@x.com", "pw")
	assert.ErrorIs(t, err, services.ErrMissingFields)

	_, err = svc.Register(context.Background(), "alice", "", "pw")
	assert.ErrorIs(t, err, services.ErrMissingFields)

	_, err = svc.Register(context.Background(), "alice", "a@x.com", "")
	assert.ErrorIs(t, err, services.ErrMissingFields)
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	password := "pw123"
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	assert.NoError(t, err)

	userID := uuid.New()
	storedUser := &models.UserDB{
		UserID:       userID,
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: string(hash),
	}

	t.Run("successful login", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		mockJWT := services.NewMockJWTGenerator(ctrl)
		svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), mockJWT, nil)

		mockReader.EXPECT().GetByIdentifier(gomock.Any(), "alice").Return(storedUser, nil)
		mockJWT.EXPECT().Generate(gomock.Any(), userID).Return("signed-token", nil)

		token, user, err := svc.Login(context.Background(), "alice", password)
		assert.NoError(t, err)
		assert.Equal(t, "signed-token", token)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("unknown identifier and wrong password fail identically", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), services.NewMockJWTGenerator(ctrl), nil)

		mockReader.EXPECT().GetByIdentifier(gomock.Any(), "nobody").Return(nil, nil)
		_, _, errUnknown := svc.Login(context.Background(), "nobody", password)

		mockReader.EXPECT().GetByIdentifier(gomock.Any(), "alice").Return(storedUser, nil)
		_, _, errWrongPw := svc.Login(context.Background(), "alice", "wrong-password")

		assert.ErrorIs(t, errUnknown, services.ErrInvalidCredentials)
		assert.ErrorIs(t, errWrongPw, services.ErrInvalidCredentials)
		assert.Equal(t, errUnknown, errWrongPw)
	})

	t.Run("reader error", func(t *testing.T) {
		mockReader := services.NewMockUserReader(ctrl)
		svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), services.NewMockJWTGenerator(ctrl), nil)

		mockReader.EXPECT().GetByIdentifier(gomock.Any(), "alice").Return(nil, errors.New("db error"))

		_, _, err := svc.Login(context.Background(), "alice", password)
		assert.EqualError(t, err, "db error")
	})

	t.Run("missing fields", func(t *testing.T) {
		svc := services.NewAuthService(services.NewMockUserReader(ctrl), services.NewMockUserWriter(ctrl), services.NewMockJWTGenerator(ctrl), nil)

		_, _, err := svc.Login(context.Background(), "", password)
		assert.ErrorIs(t, err, services.ErrMissingFields)
	})
}

func TestAuthService_Login_Throttled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := services.NewMockUserReader(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)
	mockLimiter := services.NewMockLoginLimiter(ctrl)

	svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), mockJWT, mockLimiter)

	mockLimiter.EXPECT().Allow(gomock.Any(), "alice").Return(false, nil)

	_, _, err := svc.Login(context.Background(), "alice", "pw123")
	assert.ErrorIs(t, err, services.ErrTooManyLoginAttempts)
}

func TestAuthService_Login_LimiterResetOnSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	password := "pw123"
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	storedUser := &models.UserDB{UserID: uuid.New(), Username: "alice", PasswordHash: string(hash)}

	mockReader := services.NewMockUserReader(ctrl)
	mockJWT := services.NewMockJWTGenerator(ctrl)
	mockLimiter := services.NewMockLoginLimiter(ctrl)

	svc := services.NewAuthService(mockReader, services.NewMockUserWriter(ctrl), mockJWT, mockLimiter)

	mockLimiter.EXPECT().Allow(gomock.Any(), "alice").Return(true, nil)
	mockReader.EXPECT().GetByIdentifier(gomock.Any(), "alice").Return(storedUser, nil)
	mockJWT.EXPECT().Generate(gomock.Any(), storedUser.UserID).Return("token", nil)
	mockLimiter.EXPECT().Reset(gomock.Any(), "alice").Return(nil)

	token, _, err := svc.Login(context.Background(), "alice", password)
	assert.NoError(t, err)
	assert.Equal(t, "token", token)
}
