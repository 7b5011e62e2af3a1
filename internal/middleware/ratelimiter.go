package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter counts failed logins per email over a sliding window and
// refuses further attempts once the limit is reached
type LoginLimiter interface {
	// Allow reports whether another login attempt may be made for email
	Allow(ctx context.Context, email string) (bool, error)

	// RecordFailure counts one failed attempt for email
	RecordFailure(ctx context.Context, email string) error

	// Reset clears the failure count after a successful login
	Reset(ctx context.Context, email string) error
}

type redisLoginLimiter struct {
	client      *redis.Client
	maxFailures int64
	window      time.Duration
	logger      *slog.Logger
}

// NewLoginLimiter creates a Redis-backed login limiter on an existing client
func NewLoginLimiter(client *redis.Client, maxFailures int64, window time.Duration, logger *slog.Logger) LoginLimiter {
	logger.Info("✅ [RateLimiter] Login throttling enabled",
		"max_failures", maxFailures,
		"window", window,
	)
	return &redisLoginLimiter{
		client:      client,
		maxFailures: maxFailures,
		window:      window,
		logger:      logger,
	}
}

// failedKey generates the Redis key for an email's failure count
// Format: login:failed:{email}
func failedKey(email string) string {
	return fmt.Sprintf("login:failed:%s", email)
}

func (r *redisLoginLimiter) Allow(ctx context.Context, email string) (bool, error) {
	count, err := r.client.Get(ctx, failedKey(email)).Int64()
	if err == redis.Nil {
		return true, nil
	}
	if err != nil {
		r.logger.Error("❌ [RateLimiter] Failed to get failure count", "error", err)
		// On error, allow the attempt but report it
		return true, err
	}
	return count < r.maxFailures, nil
}

func (r *redisLoginLimiter) RecordFailure(ctx context.Context, email string) error {
	key := failedKey(email)

	// Window starts at the first failure; NX also repairs a counter left without a TTL
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, key)
		pipe.ExpireNX(ctx, key, r.window)
		return nil
	})
	if err != nil {
		r.logger.Error("❌ [RateLimiter] Failed to record login failure", "error", err)
		return err
	}
	return nil
}

func (r *redisLoginLimiter) Reset(ctx context.Context, email string) error {
	return r.client.Del(ctx, failedKey(email)).Err()
}

// NoOpLoginLimiter always allows login attempts
// Used when throttling is disabled or Redis is not available
type NoOpLoginLimiter struct{}

// NewNoOpLoginLimiter creates a no-op login limiter
func NewNoOpLoginLimiter(logger *slog.Logger) LoginLimiter {
	logger.Warn("⚠️ [RateLimiter] Using no-op login limiter - login throttling is disabled")
	return &NoOpLoginLimiter{}
}

func (NoOpLoginLimiter) Allow(ctx context.Context, email string) (bool, error) { return true, nil }

func (NoOpLoginLimiter) RecordFailure(ctx context.Context, email string) error { return nil }

func (NoOpLoginLimiter) Reset(ctx context.Context, email string) error { return nil }
