package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/mkarpushin/photoshare/internal/logger"
	"github.com/mkarpushin/photoshare/internal/models"
)

// CommentsLister defines the interface that the engagement service must implement.
type CommentsLister interface {
	ListComments(ctx context.Context, photoID uuid.UUID) ([]models.Comment, error)
}

// ListCommentsResponse represents the comments of a photo
// swagger:model ListCommentsResponse
type ListCommentsResponse struct {
	// Comments ordered oldest-first
	Items []models.Comment `json:"items"`
}

// ListCommentsErrorResponse represents an error response for comment listing
// swagger:model ListCommentsErrorResponse
type ListCommentsErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewListCommentsHandler returns an HTTP handler for a photo's comments.
// A photo with no comments, or no photo at all, yields an empty list.
// @Summary List comments
// @Description Returns the photo's comments ordered oldest-first.
// @Tags photos
// @Produce json
// @Param photoID path string true "Photo ID"
// @Success 200 {object} handlers.ListCommentsResponse "Comments"
// @Router /photos/{photoID}/comments [get]
func NewListCommentsHandler(svc CommentsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		photoID, err := uuid.Parse(chi.URLParam(r, "photoID"))
		if err != nil {
			// Unknown photos yield an empty list, malformed ids included.
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(ListCommentsResponse{Items: []models.Comment{}})
			return
		}

		comments, err := svc.ListComments(r.Context(), photoID)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListCommentsErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(ListCommentsResponse{
			Items: comments,
		})
	}
}
