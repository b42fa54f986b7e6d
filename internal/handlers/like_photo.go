package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mkarpushin/photoshare/internal/logger"
	"github.com/mkarpushin/photoshare/internal/services"
)

// Liker defines the interface that the engagement service must implement.
type Liker interface {
	Like(ctx context.Context, photoID, userID uuid.UUID) (int64, error)
}

// LikeResponse represents the current like count after a like or unlike
// swagger:model LikeResponse
type LikeResponse struct {
	// Current like count for the photo
	// default: 1
	LikesCount int64 `json:"likesCount"`
}

// LikeErrorResponse represents an error response for like operations
// swagger:model LikeErrorResponse
type LikeErrorResponse struct {
	// Error message
	// default: Photo not found
	Error string `json:"error"`
}

// NewLikePhotoHandler returns an HTTP handler that likes a photo.
// Re-liking is a no-op: the count is simply returned.
// @Summary Like a photo
// @Description Idempotently ensures the caller's like exists on the photo and returns the current count.
// @Tags photos
// @Produce json
// @Param photoID path string true "Photo ID"
// @Success 200 {object} handlers.LikeResponse "Current like count"
// @Failure 401 {object} handlers.LikeErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.LikeErrorResponse "Photo not found"
// @Router /photos/{photoID}/like [post]
// @Security BearerAuth
func NewLikePhotoHandler(svc Liker, tokener ClaimsTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := callerID(ctx, r, tokener)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(LikeErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		photoID, err := uuid.Parse(chi.URLParam(r, "photoID"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(LikeErrorResponse{
				Error: "Photo not found",
			})
			return
		}

		count, err := svc.Like(ctx, photoID, userID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPhotoNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(LikeErrorResponse{
					Error: "Photo not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(LikeErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LikeResponse{
			LikesCount: count,
		})
	}
}
