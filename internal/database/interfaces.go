package database

import (
	"context"
	"errors"
	"time"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore keeps encoded session payloads keyed by session id
type SessionStore interface {
	Load(ctx context.Context, id string) ([]byte, error)
	Save(ctx context.Context, id string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
	Close() error
}

var (
	_ SessionStore = (*RedisClient)(nil)
	_ SessionStore = (*MemoryStore)(nil)
)
