package cache

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"taskboard/internal/observability"

	"github.com/redis/go-redis/v9"
)

// GetJSON attempts to get the key from Redis and unmarshal into dest.
// Returns (true, nil) if found and unmarshaled, (false, nil) if not found.
func GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if client == nil {
		return false, nil
	}
	s, err := client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(s), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON marshals v and sets the key with TTL.
func SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if client == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return client.Set(ctx, key, b, ttl).Err()
}

// Aside tries Redis first, on miss it calls fetch (which must write into dest),
// then stores the result in Redis with ttl. Cache errors degrade to a fetch.
func Aside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) error {
	prefix := keyPrefix(key)

	found, err := GetJSON(ctx, key, dest)
	if err == nil && found {
		observability.CacheHits.WithLabelValues(prefix).Inc()
		return nil
	}
	observability.CacheMisses.WithLabelValues(prefix).Inc()

	// Fetch from source (DB)
	if err := fetch(); err != nil {
		return err
	}

	// Store into cache (best-effort)
	_ = SetJSON(ctx, key, dest, ttl)
	return nil
}

// Invalidate removes the given keys from the cache (best-effort).
func Invalidate(ctx context.Context, keys ...string) {
	if client == nil || len(keys) == 0 {
		return
	}
	_ = client.Del(ctx, keys...).Err()
}

// InvalidateUser drops the cached user record and the stats aggregate.
func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID), StatsKey())
}

// InvalidateTask drops the cached task record and the stats aggregate.
func InvalidateTask(ctx context.Context, taskID uint) {
	Invalidate(ctx, TaskKey(taskID), StatsKey())
}

func keyPrefix(key string) string {
	if i := strings.IndexByte(key, ':'); i > 0 {
		return key[:i]
	}
	return key
}
