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

// CommentCreator defines the interface that the engagement service must implement.
type CommentCreator interface {
	CreateComment(ctx context.Context, photoID, authorID uuid.UUID, text string) (*models.Comment, error)
}

// CreateCommentRequest represents the JSON body for creating a comment
// swagger:model CreateCommentRequest
type CreateCommentRequest struct {
	// Comment text
	// required: true
	// default: Nice shot!
	Text string `json:"text"`
}

// CreateCommentResponse represents a successful comment creation response
// swagger:model CreateCommentResponse
type CreateCommentResponse struct {
	// The created comment with author identity
	Comment models.Comment `json:"comment"`
}

// CreateCommentErrorResponse represents an error response for comment creation
// swagger:model CreateCommentErrorResponse
type CreateCommentErrorResponse struct {
	// Error message
	// default: Comment text must not be empty
	Error string `json:"error"`
}

// NewCreateCommentHandler returns an HTTP handler that comments on a photo.
// @Summary Comment on a photo
// @Description Persists a comment authored by the caller and returns it enriched with the author's identity.
// @Tags photos
// @Accept json
// @Produce json
// @Param photoID path string true "Photo ID"
// @Param createCommentRequest body handlers.CreateCommentRequest true "Comment request"
// @Success 201 {object} handlers.CreateCommentResponse "Comment created"
// @Failure 400 {object} handlers.CreateCommentErrorResponse "Comment text must not be empty"
// @Failure 401 {object} handlers.CreateCommentErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.CreateCommentErrorResponse "Photo not found"
// @Router /photos/{photoID}/comments [post]
// @Security BearerAuth
func NewCreateCommentHandler(svc CommentCreator, tokener ClaimsTokener) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		userID, ok := callerID(ctx, r, tokener)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(CreateCommentErrorResponse{
				Error: "Unauthorized",
			})
			return
		}

		photoID, err := uuid.Parse(chi.URLParam(r, "photoID"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(CreateCommentErrorResponse{
				Error: "Photo not found",
			})
			return
		}

		var req CreateCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateCommentErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		comment, err := svc.CreateComment(ctx, photoID, userID, req.Text)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrEmptyCommentText):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreateCommentErrorResponse{
					Error: "Comment text must not be empty",
				})
			case errors.Is(err, services.ErrPhotoNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(CreateCommentErrorResponse{
					Error: "Photo not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreateCommentErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateCommentResponse{
			Comment: *comment,
		})
	}
}
