package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mkarpushin/photoshare/internal/logger"
)

// Unliker defines the interface that the engagement service must implement.
type Unliker interface {
	Unlike(ctx context.Context, photoID, userID uuid.UUID) (int64, error)
}

// NewUnlikePhotoHandler returns an HTTP handler that removes a like.
// Unliking a photo the caller never liked succeeds and leaves the count
// unchanged.
// @Summary Unlike a photo
// @Description Idempotently removes the caller's like from the photo and returns the current count.
// @Tags photos
// @Produce json
// @Param photoID path string true "Photo ID"
// @Success 200 {object} handlers.LikeResponse "Current like count"
// @Failure 401 {object} handlers.LikeErrorResponse "Unauthorized"
// @Router /photos/{photoID}/like [delete]
// @Security BearerAuth
func NewUnlikePhotoHandler(svc Unliker, tokener ClaimsTokener) http.HandlerFunc {
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

		count, err := svc.Unlike(ctx, photoID, userID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(LikeErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(LikeResponse{
			LikesCount: count,
		})
	}
}
