package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryLimiterBurstAndRefill(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewMemoryLimiter(60, 2)
	limiter.now = func() time.Time { return clock }
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		ok, err := limiter.Allow(ctx, "10.0.0.1")
		require.NoError(t, err)
		require.True(t, ok)
	}
	ok, _ := limiter.Allow(ctx, "10.0.0.1")
	require.False(t, ok)

	other, _ := limiter.Allow(ctx, "10.0.0.2")
	require.True(t, other)

	clock = clock.Add(2 * time.Second)
	ok, _ = limiter.Allow(ctx, "10.0.0.1")
	require.True(t, ok)
}

func TestMemoryLimiterEvictsIdleVisitors(t *testing.T) {
	clock := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	limiter := NewMemoryLimiter(60, 1)
	limiter.now = func() time.Time { return clock }

	_, _ = limiter.Allow(context.Background(), "a")
	clock = clock.Add(10 * time.Minute)
	_, _ = limiter.Allow(context.Background(), "b")

	limiter.mu.Lock()
	defer limiter.mu.Unlock()
	require.NotContains(t, limiter.visitors, "a")
	require.Contains(t, limiter.visitors, "b")
}

func TestValkeyLimiterWindowKey(t *testing.T) {
	limiter := NewValkeyLimiter(nil, "", 10)
	ts := time.Unix(1200, 0)
	require.Equal(t, "forest:ratelimit:1.2.3.4:20", limiter.windowKey("1.2.3.4", ts))
	require.Equal(t, limiter.windowKey("k", ts), limiter.windowKey("k", ts.Add(59*time.Second)))
	require.NotEqual(t, limiter.windowKey("k", ts), limiter.windowKey("k", ts.Add(60*time.Second)))
}
