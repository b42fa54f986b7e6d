package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mkarpushin/photoshare/internal/logger"
)

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Validate(ctx context.Context, tokenString string) error
}

// unauthorizedResponse is the JSON body written on a failed bearer check.
type unauthorizedResponse struct {
	Error string `json:"error"`
}

// AuthMiddleware returns a middleware that rejects requests without a
// valid bearer token. Protected handlers re-parse the claims themselves
// to learn the caller's identity.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(unauthorizedResponse{Error: "Unauthorized"})
				return
			}

			if err := tokener.Validate(ctx, tokenString); err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(unauthorizedResponse{Error: "Unauthorized"})
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
