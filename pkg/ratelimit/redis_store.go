package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// takeScript performs the fixed-window check-and-increment atomically on the
// Redis side. A denied request must not touch the counter, so a plain INCR
// with expiry is not enough.
var takeScript = redis.NewScript(`
local current = tonumber(redis.call('GET', KEYS[1]) or '0')
if current >= tonumber(ARGV[1]) then
	return {current, redis.call('PTTL', KEYS[1]), 0}
end
local count = redis.call('INCR', KEYS[1])
if count == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[2])
end
return {count, redis.call('PTTL', KEYS[1]), 1}
`)

// RedisClient is the subset of redis.Client the store uses.
type RedisClient interface {
	redis.Scripter
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisStore implements Store on a shared Redis counter, the substitution
// for MemoryStore when the service runs as multiple instances. Expiry is
// delegated to Redis TTLs, so no sweep goroutine is needed.
type RedisStore struct {
	client RedisClient
	prefix string
}

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithKeyPrefix sets the Redis key namespace. Default is "ratelimit:".
func WithKeyPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// NewRedisStore creates a Redis-backed fixed-window store. The client is
// owned by the caller and is not closed by Close.
func NewRedisStore(client RedisClient, opts ...RedisStoreOption) *RedisStore {
	s := &RedisStore{
		client: client,
		prefix: "ratelimit:",
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Take implements Store.
func (s *RedisStore) Take(ctx context.Context, key string, limit int, window time.Duration) (int64, time.Time, bool, error) {
	res, err := takeScript.Run(ctx, s.client, []string{s.prefix + key}, limit, window.Milliseconds()).Result()
	if err != nil {
		return 0, time.Time{}, false, fmt.Errorf("ratelimit: redis take: %w", err)
	}

	vals, ok := res.([]any)
	if !ok || len(vals) != 3 {
		return 0, time.Time{}, false, fmt.Errorf("ratelimit: unexpected script result %v", res)
	}

	count, _ := vals[0].(int64)
	pttl, _ := vals[1].(int64)
	allowed, _ := vals[2].(int64)

	resetAt := time.Now().Add(time.Duration(pttl) * time.Millisecond)
	return count, resetAt, allowed == 1, nil
}

// Reset removes the given key from the store.
func (s *RedisStore) Reset(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("ratelimit: redis reset: %w", err)
	}
	return nil
}

// Close implements Store. The underlying client belongs to the caller.
func (s *RedisStore) Close() error {
	return nil
}
