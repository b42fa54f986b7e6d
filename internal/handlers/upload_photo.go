package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"

	"github.com/mkarpushin/photoshare/internal/jwt"
	"github.com/mkarpushin/photoshare/internal/logger"
	"github.com/mkarpushin/photoshare/internal/models"
)

// maxUploadSize caps the multipart form held in memory.
const maxUploadSize = 32 << 20

// ClaimsTokener extracts and parses the caller's bearer token. Shared by
// all protected handlers in this package.
type ClaimsTokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetClaims(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// PhotoUploader defines the interface that the photo service must implement.
type PhotoUploader interface {
	Upload(ctx context.Context, ownerID uuid.UUID, file io.Reader, size int64, filename, contentType string, caption *string) (*models.PhotoDB, error)
}

// UploadPhotoResponse represents a successful upload response
// swagger:model UploadPhotoResponse
type UploadPhotoResponse struct {
	// The stored photo
	Photo models.PhotoDB `json:"photo"`
}

// UploadPhotoErrorResponse represents an error response for photo upload
// swagger:model UploadPhotoErrorResponse
type UploadPhotoErrorResponse struct {
	// Error message
	// default: Image file is required
	Error string `json:"error"`
}

// NewUploadPhotoHandler returns an HTTP handler for photo upload.
// @Summary Upload a photo
// @Description Stores the image blob under a generated name and creates the photo record owned by the caller.
// @Tags photos
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image file"
// @Param caption formData string false "Optional caption"
// @Success 201 {object} handlers.UploadPhotoResponse "Photo created"
// @Failure 400 {object} handlers.UploadPhotoErrorResponse "Image file is required"
// @Failure 401 {object} handlers.UploadPhotoErrorResponse "Unauthorized"
// @Router /photos [post]
// @Security BearerAuth
func NewUploadPhotoHandler(svc PhotoUploader, tokener ClaimsTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := callerID(ctx, r, tokener)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(UploadPhotoErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UploadPhotoErrorResponse{
				Error: "Image file is required",
			})
			return
		}

		file, header, err := r.FormFile("image")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UploadPhotoErrorResponse{
				Error: "Image file is required",
			})
			return
		}
		defer file.Close()

		var caption *string
		if c := r.FormValue("caption"); c != "" {
			caption = &c
		}

		photo, err := svc.Upload(ctx, userID, file, header.Size, header.Filename, header.Header.Get("Content-Type"), caption)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UploadPhotoErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(UploadPhotoResponse{
			Photo: *photo,
		})
	}
}

// callerID resolves the authenticated user's id from the bearer token.
func callerID(ctx context.Context, r *http.Request, tokener ClaimsTokener) (uuid.UUID, bool) {
	tokenStr, err := tokener.GetTokenFromRequest(ctx, r)
	if err != nil {
		logger.Log.Errorw("missing bearer token", "err", err)
		return uuid.Nil, false
	}

	claims, err := tokener.GetClaims(ctx, tokenStr)
	if err != nil {
		logger.Log.Errorw("failed to parse token claims", "err", err)
		return uuid.Nil, false
	}

	return claims.UserID, true
}
