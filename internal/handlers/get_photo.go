package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mkarpushin/photoshare/internal/logger"
	"github.com/mkarpushin/photoshare/internal/models"
	"github.com/mkarpushin/photoshare/internal/services"
)

// PhotoGetter defines the interface that the photo service must implement.
type PhotoGetter interface {
	Get(ctx context.Context, photoID uuid.UUID) (*models.Photo, error)
}

// GetPhotoErrorResponse represents an error response for photo retrieval
// swagger:model GetPhotoErrorResponse
type GetPhotoErrorResponse struct {
	// Error message
	// default: Photo not found
	Error string `json:"error"`
}

// NewGetPhotoHandler returns an HTTP handler for fetching one photo.
// @Summary Get a photo
// @Description Returns a single photo enriched with owner identity and like count.
// @Tags photos
// @Produce json
// @Param photoID path string true "Photo ID"
// @Success 200 {object} models.Photo "Photo"
// @Failure 404 {object} handlers.GetPhotoErrorResponse "Photo not found"
// @Router /photos/{photoID} [get]
func NewGetPhotoHandler(svc PhotoGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		photoID, err := uuid.Parse(chi.URLParam(r, "photoID"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(GetPhotoErrorResponse{
				Error: "Photo not found",
			})
			return
		}

		photo, err := svc.Get(r.Context(), photoID)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrPhotoNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(GetPhotoErrorResponse{
					Error: "Photo not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GetPhotoErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(photo)
	}
}
