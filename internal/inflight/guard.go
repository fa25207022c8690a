// Package inflight tracks operations that must not run twice for the same
// key, e.g. a delete that is already on its way to the store. The guard is
// acquired before the store call and released after it resolves; a second
// acquire for the same key fails until then.
package inflight

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTL bounds how long a key can stay held if a release is lost (a crashed
// request must not lock its id forever).
const TTL = 30 * time.Second

// Guard marks keys as in flight. TryAcquire returns false when the key is
// already held.
type Guard interface {
	TryAcquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

// RedisGuard implements Guard on Redis SETNX, so the discipline holds
// across replicas of the API.
type RedisGuard struct {
	rdb    *redis.Client
	prefix string
}

// NewRedisGuard creates a redis-backed guard. Keys are stored under
// prefix + ":" + key.
func NewRedisGuard(rdb *redis.Client, prefix string) *RedisGuard {
	return &RedisGuard{rdb: rdb, prefix: prefix}
}

func (g *RedisGuard) TryAcquire(ctx context.Context, key string) (bool, error) {
	return g.rdb.SetNX(ctx, g.prefix+":"+key, 1, TTL).Result()
}

func (g *RedisGuard) Release(ctx context.Context, key string) error {
	return g.rdb.Del(ctx, g.prefix+":"+key).Err()
}

// MemoryGuard implements Guard in process memory. Used in tests and
// sufficient for single-instance deployments without Redis.
type MemoryGuard struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewMemoryGuard creates an in-memory guard.
func NewMemoryGuard() *MemoryGuard {
	return &MemoryGuard{held: make(map[string]struct{})}
}

func (g *MemoryGuard) TryAcquire(_ context.Context, key string) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.held[key]; ok {
		return false, nil
	}
	g.held[key] = struct{}{}
	return true, nil
}

func (g *MemoryGuard) Release(_ context.Context, key string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.held, key)
	return nil
}
