package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mesa-app/mesa/internal/logger"
)

func TestPoolSubmit(t *testing.T) {
	pool := NewPool(logger.Discard())

	var counter int32
	for i := 0; i < 10; i++ {
		pool.Submit(func(ctx context.Context) {
			atomic.AddInt32(&counter, 1)
		})
	}

	pool.Shutdown(5 * time.Second)

	assert.Equal(t, int32(10), atomic.LoadInt32(&counter))
}

func TestPoolSubmit_ContextCancelledOnShutdown(t *testing.T) {
	pool := NewPool(logger.Discard())

	stopped := make(chan struct{})
	pool.Submit(func(ctx context.Context) {
		<-ctx.Done()
		close(stopped)
	})

	pool.Shutdown(5 * time.Second)

	select {
	case <-stopped:
	default:
		t.Fatal("task did not observe cancellation")
	}
}

func TestPoolEvery(t *testing.T) {
	pool := NewPool(logger.Discard())

	var runs int32
	pool.Every("counter", 10*time.Millisecond, func(ctx context.Context) {
		atomic.AddInt32(&runs, 1)
	})

	assert.Eventually(t, func() bool {
		return atomic.LoadInt32(&runs) >= 3
	}, time.Second, 5*time.Millisecond)

	pool.Shutdown(5 * time.Second)

	after := atomic.LoadInt32(&runs)
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, atomic.LoadInt32(&runs), "task must not run after shutdown")
}

func TestPoolShutdown_Timeout(t *testing.T) {
	pool := NewPool(logger.Discard())

	release := make(chan struct{})
	defer close(release)

	pool.Submit(func(ctx context.Context) {
		<-release
	})

	start := time.Now()
	pool.Shutdown(50 * time.Millisecond)

	assert.Less(t, time.Since(start), time.Second)
}
