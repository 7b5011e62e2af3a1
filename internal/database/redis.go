package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mesa-app/mesa/internal/config"
)

// RedisClient wraps the redis client with helper methods for sessions
type RedisClient struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisClient creates a new Redis client instance
func NewRedisClient(cfg *config.Config, logger *slog.Logger) (*RedisClient, error) {
	logger.Info("🔌 [Redis] Connecting to Redis...",
		"host", cfg.RedisHost,
		"port", cfg.RedisPort,
		"db", cfg.RedisDB,
	)

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.RedisPassword,
		DB:       int(cfg.RedisDB),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("✅ [Redis] Redis connection established")

	return &RedisClient{
		client: client,
		logger: logger,
	}, nil
}

// NewRedisClientForTesting creates a Redis client with a provided redis.Client (for testing)
func NewRedisClientForTesting(client *redis.Client, logger *slog.Logger) *RedisClient {
	return &RedisClient{
		client: client,
		logger: logger,
	}
}

// Client exposes the underlying client for other Redis-backed components
func (r *RedisClient) Client() *redis.Client {
	return r.client
}

// Close closes the Redis connection
func (r *RedisClient) Close() error {
	return r.client.Close()
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

// Load returns the stored payload or ErrSessionNotFound when the key is gone
func (r *RedisClient) Load(ctx context.Context, id string) ([]byte, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		r.logger.Error("❌ [Redis] Failed to load session",
			"error", err,
		)
		return nil, err
	}

	return data, nil
}

// Save writes the payload and resets its TTL
func (r *RedisClient) Save(ctx context.Context, id string, data []byte, ttl time.Duration) error {
	if err := r.client.Set(ctx, sessionKey(id), data, ttl).Err(); err != nil {
		r.logger.Error("❌ [Redis] Failed to save session",
			"error", err,
		)
		return err
	}

	r.logger.Debug("💾 [Redis] Saved session", "ttl", ttl)
	return nil
}

func (r *RedisClient) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		r.logger.Error("❌ [Redis] Failed to delete session",
			"error", err,
		)
		return err
	}

	return nil
}
