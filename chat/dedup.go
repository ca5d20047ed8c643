package chat

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Deduper remembers message IDs that have already been delivered locally.
// Seen marks the ID as delivered and reports whether it was already known.
type Deduper interface {
	Seen(ctx context.Context, id string) (bool, error)
}

type MemoryDeduper struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

func NewMemoryDeduper() *MemoryDeduper {
	return &MemoryDeduper{seen: make(map[string]struct{})}
}

func (d *MemoryDeduper) Seen(_ context.Context, id string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.seen[id]; ok {
		return true, nil
	}
	d.seen[id] = struct{}{}
	return false, nil
}

// RedisDeduper keeps delivery markers in Redis with a TTL, so restarts and
// multiple consumers share the same view of what was delivered.
type RedisDeduper struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisDeduper(client *redis.Client, ttl time.Duration) *RedisDeduper {
	return &RedisDeduper{Client: client, TTL: ttl}
}

func (d *RedisDeduper) MarkerKey(id string) string {
	return "chat:delivered:" + id
}

func (d *RedisDeduper) Seen(ctx context.Context, id string) (bool, error) {
	key := d.MarkerKey(id)
	res, err := d.Client.Exists(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if res > 0 {
		return true, nil
	}
	return false, d.Client.Set(ctx, key, "1", d.TTL).Err()
}

var (
	_ Deduper = (*MemoryDeduper)(nil)
	_ Deduper = (*RedisDeduper)(nil)
)
