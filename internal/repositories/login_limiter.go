package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mkarpushin/photoshare/internal/logger"
)

// LoginLimiterRepository throttles login attempts per identifier using a
// fixed-window counter in Redis.
type LoginLimiterRepository struct {
	client *redis.Client
	max    int64         // attempts allowed per window
	window time.Duration // window length
}

// NewLoginLimiterRepository creates a new limiter with the given budget.
func NewLoginLimiterRepository(client *redis.Client, max int64, window time.Duration) *LoginLimiterRepository {
	return &LoginLimiterRepository{
		client: client,
		max:    max,
		window: window,
	}
}

// Allow records one attempt for the identifier and reports whether it is
// still within budget. The window starts at the first attempt.
func (r *LoginLimiterRepository) Allow(ctx context.Context, identifier string) (bool, error) {
	key := fmt.Sprintf("login_attempts:%s", identifier)

	count, err := r.client.Incr(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", count,
			"error", err,
		)
		return false, err
	}

	if count == 1 {
		if err := r.client.Expire(ctx, key, r.window).Err(); err != nil {
			logger.Log.Infow(
				"key", key,
				"result", count,
				"error", err,
			)
			return false, err
		}
	}

	allowed := count <= r.max

	logger.Log.Infow(
		"key", key,
		"attempts", count,
		"result", allowed,
		"error", nil,
	)

	return allowed, nil
}

// Reset clears the attempt counter after a successful login.
func (r *LoginLimiterRepository) Reset(ctx context.Context, identifier string) error {
	key := fmt.Sprintf("login_attempts:%s", identifier)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}
