package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/valkey-io/valkey-go"
)

// ValkeyLimiter enforces a fixed one-minute window shared by every instance
// pointed at the same Valkey database.
type ValkeyLimiter struct {
	client valkey.Client
	prefix string
	limit  int64
	now    func() time.Time
}

// NewValkeyLimiter allows requestsPerMinute hits per key per minute.
func NewValkeyLimiter(client valkey.Client, prefix string, requestsPerMinute int) *ValkeyLimiter {
	if prefix == "" {
		prefix = "forest:ratelimit"
	}
	return &ValkeyLimiter{client: client, prefix: prefix, limit: int64(requestsPerMinute), now: time.Now}
}

// Allow increments the current window counter for key.
func (l *ValkeyLimiter) Allow(ctx context.Context, key string) (bool, error) {
	windowKey := l.windowKey(key, l.now())
	count, err := l.client.Do(ctx, l.client.B().Incr().Key(windowKey).Build()).AsInt64()
	if err != nil {
		return false, fmt.Errorf("increment rate window: %w", err)
	}
	if count == 1 {
		if err := l.client.Do(ctx, l.client.B().Expire().Key(windowKey).Seconds(120).Build()).Error(); err != nil {
			return false, fmt.Errorf("expire rate window: %w", err)
		}
	}
	return count <= l.limit, nil
}

func (l *ValkeyLimiter) windowKey(key string, now time.Time) string {
	return fmt.Sprintf("%s:%s:%d", l.prefix, key, now.Unix()/60)
}
