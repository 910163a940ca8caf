//go:build integration

package ratelimit

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/forecast-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisLimiter(t *testing.T, max int, window time.Duration) *RedisSlidingWindow {
	t.Helper()

	client, err := NewRedisClient(context.Background(), testdb.RedisURL(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	l, err := NewRedisSlidingWindow(client, max, window)
	require.NoError(t, err)
	// Isolate each test's keys.
	l.prefix = DefaultKeyPrefix + "test:" + uuid.NewString() + ":"
	return l
}

func TestRedisSlidingWindowBudget(t *testing.T) {
	l := newRedisLimiter(t, 3, time.Minute)
	ctx := context.Background()
	now := time.Now()

	for i := 0; i < 3; i++ {
		ok, err := l.Admit(ctx, "10.0.0.1", now)
		require.NoError(t, err)
		assert.True(t, ok, "request %d", i+1)
	}

	ok, err := l.Admit(ctx, "10.0.0.1", now)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = l.Admit(ctx, "10.0.0.2", now)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = l.Admit(ctx, "10.0.0.1", now.Add(time.Minute+time.Millisecond))
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRedisSlidingWindowConcurrent(t *testing.T) {
	const budget = 10
	l := newRedisLimiter(t, budget, time.Minute)
	now := time.Now()

	var (
		wg       sync.WaitGroup
		admitted atomic.Int64
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, err := l.Admit(context.Background(), "shared", now)
			if assert.NoError(t, err) && ok {
				admitted.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(budget), admitted.Load())
}
