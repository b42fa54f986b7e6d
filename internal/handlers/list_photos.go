package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mkarpushin/photoshare/internal/logger"
	"github.com/mkarpushin/photoshare/internal/models"
)

// PhotoLister defines the interface that the photo service must implement.
type PhotoLister interface {
	List(ctx context.Context, page, limit int) (*models.PhotoPage, error)
}

// ListPhotosErrorResponse represents an error response for photo listing
// swagger:model ListPhotosErrorResponse
type ListPhotosErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewListPhotosHandler returns an HTTP handler for the photo feed.
// @Summary List photos
// @Description Returns photos ordered newest-first, paginated, each enriched with owner identity and like count.
// @Tags photos
// @Produce json
// @Param page query int false "1-based page number" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} models.PhotoPage "Page of photos"
// @Router /photos [get]
func NewListPhotosHandler(svc PhotoLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Missing or unparsable values fall back to the service defaults.
		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

		result, err := svc.List(r.Context(), page, limit)
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListPhotosErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(result)
	}
}
