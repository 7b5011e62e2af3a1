package database

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesa-app/mesa/internal/config"
	"github.com/mesa-app/mesa/internal/logger"
)

func setupMiniRedis(t *testing.T) (*miniredis.Miniredis, *RedisClient) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	redisClient := NewRedisClientForTesting(client, logger.Discard())

	t.Cleanup(func() {
		redisClient.Close()
		mr.Close()
	})

	return mr, redisClient
}

func TestRedisClient_SaveAndLoad(t *testing.T) {
	mr, store := setupMiniRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "abc", []byte(`{"user_id":1}`), time.Hour))

	data, err := store.Load(ctx, "abc")
	require.NoError(t, err)
	assert.JSONEq(t, `{"user_id":1}`, string(data))

	assert.True(t, mr.Exists("session:abc"))
	assert.Equal(t, time.Hour, mr.TTL("session:abc"))
}

func TestRedisClient_LoadMissing(t *testing.T) {
	_, store := setupMiniRedis(t)

	_, err := store.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisClient_Expiry(t *testing.T) {
	mr, store := setupMiniRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "short", []byte("x"), time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := store.Load(ctx, "short")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestRedisClient_Delete(t *testing.T) {
	mr, store := setupMiniRedis(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "gone", []byte("x"), time.Hour))
	require.NoError(t, store.Delete(ctx, "gone"))
	assert.False(t, mr.Exists("session:gone"))

	// Deleting twice is not an error
	assert.NoError(t, store.Delete(ctx, "gone"))
}

func TestRedisClient_ServerDown(t *testing.T) {
	mr, store := setupMiniRedis(t)
	mr.Close()

	_, err := store.Load(context.Background(), "abc")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrSessionNotFound)
}

func TestNewRedisClient_Unreachable(t *testing.T) {
	cfg := &config.Config{RedisHost: "127.0.0.1", RedisPort: 1}

	_, err := NewRedisClient(cfg, logger.Discard())
	assert.Error(t, err)
}

func TestNewRedisClient_Success(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	cfg := &config.Config{RedisHost: mr.Host(), RedisPort: int64(mustPort(t, mr))}

	client, err := NewRedisClient(cfg, logger.Discard())
	require.NoError(t, err)
	defer client.Close()

	assert.NotNil(t, client.Client())
}

func mustPort(t *testing.T, mr *miniredis.Miniredis) int {
	t.Helper()
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)
	return port
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	store := NewMemoryStore()
	store.now = func() time.Time { return now }

	require.NoError(t, store.Save(ctx, "a", []byte("one"), time.Minute))
	require.NoError(t, store.Save(ctx, "b", []byte("two"), time.Hour))

	data, err := store.Load(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "one", string(data))

	// Returned slices are copies
	data[0] = 'X'
	again, _ := store.Load(ctx, "a")
	assert.Equal(t, "one", string(again))

	now = now.Add(2 * time.Minute)

	_, err = store.Load(ctx, "a")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 2, store.Len())

	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 1, store.Len())

	require.NoError(t, store.Delete(ctx, "b"))
	_, err = store.Load(ctx, "b")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.NoError(t, store.Close())
}
