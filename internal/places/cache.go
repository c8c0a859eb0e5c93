package places

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
)

// Cache stores serialized search results keyed by the exact query text.
// Entries live for the lifetime of the process (memory cache) or of the
// Redis server (shared cache); there is no per-entry expiry because
// geocoding results for a fixed query are effectively static.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
}

// memoryCache is the default in-process cache.
type memoryCache struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemoryCache returns an empty in-process cache.
func NewMemoryCache() Cache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *memoryCache) Set(_ context.Context, key string, value []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
}

// redisCache shares lookup results across instances. Redis errors degrade
// to cache misses; the caller falls through to the geocoder.
type redisCache struct {
	client *redis.Client
}

// NewRedisCache returns a Cache backed by the provided Redis client.
func NewRedisCache(client *redis.Client) Cache {
	return &redisCache{client: client}
}

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	b, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return b, true
}

func (c *redisCache) Set(ctx context.Context, key string, value []byte) {
	// Best effort: a failed write just means a re-fetch later.
	c.client.Set(ctx, key, value, 0)
}
