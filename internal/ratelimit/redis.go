package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// slidingWindowScript prunes, counts and conditionally records in one
// round trip. Scores are microseconds since the epoch.
//
// KEYS[1] sorted set for the identity
// ARGV[1] now, ARGV[2] cutoff, ARGV[3] limit, ARGV[4] member, ARGV[5] ttl ms
var slidingWindowScript = redis.NewScript(`
redis.call('ZREMRANGEBYSCORE', KEYS[1], '-inf', '(' .. ARGV[2])
local count = redis.call('ZCARD', KEYS[1])
if count >= tonumber(ARGV[3]) then
	return 0
end
redis.call('ZADD', KEYS[1], ARGV[1], ARGV[4])
redis.call('PEXPIRE', KEYS[1], ARGV[5])
return 1
`)

// DefaultKeyPrefix namespaces the sorted sets written by RedisSlidingWindow.
const DefaultKeyPrefix = "forecast:ratelimit:"

// RedisSlidingWindow is a Limiter backed by one Redis sorted set per
// identity, so replicas share a budget.
type RedisSlidingWindow struct {
	client      redis.UniversalClient
	maxRequests int
	window      time.Duration
	prefix      string
}

var _ Limiter = (*RedisSlidingWindow)(nil)

// NewRedisSlidingWindow wraps an existing client.
func NewRedisSlidingWindow(
	client redis.UniversalClient,
	maxRequests int,
	window time.Duration,
) (*RedisSlidingWindow, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client cannot be nil")
	}
	if maxRequests < 0 {
		return nil, fmt.Errorf("%w: max requests must not be negative, got %d", ErrInvalidLimit, maxRequests)
	}
	if window <= 0 {
		return nil, fmt.Errorf("%w: window must be positive, got %s", ErrInvalidLimit, window)
	}

	return &RedisSlidingWindow{
		client:      client,
		maxRequests: maxRequests,
		window:      window,
		prefix:      DefaultKeyPrefix,
	}, nil
}

// NewRedisClient parses url (redis:// or rediss://) and pings the server.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

// Admit implements Limiter.
func (r *RedisSlidingWindow) Admit(ctx context.Context, key string, now time.Time) (bool, error) {
	if r.maxRequests == 0 {
		return false, nil
	}

	nowMicros := now.UnixMicro()
	cutoffMicros := now.Add(-r.window).UnixMicro()
	ttl := r.window.Milliseconds()
	if ttl <= 0 {
		ttl = 1
	}

	// Two admissions in the same microsecond must not collapse into one
	// member.
	member := fmt.Sprintf("%d-%s", nowMicros, uuid.NewString())

	admitted, err := slidingWindowScript.Run(
		ctx,
		r.client,
		[]string{r.prefix + key},
		nowMicros,
		cutoffMicros,
		r.maxRequests,
		member,
		ttl,
	).Int64()
	if err != nil {
		return false, fmt.Errorf("rate limit script for %q: %w", key, err)
	}
	return admitted == 1, nil
}
