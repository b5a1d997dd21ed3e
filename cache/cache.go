package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Cache is a typed wrapper around a ristretto cache.
type Cache[T any] struct {
	impl      *ristretto.Cache[string, T]
	cacheType string
	ttl       time.Duration
}

// New creates a cache whose entries expire after ttl.
func New[T any](costFunc func(T) int64, cacheType string, ttl time.Duration) (*Cache[T], error) {
	impl, err := ristretto.NewCache(&ristretto.Config[string, T]{
		NumCounters: 1e4,     // keys to track frequency of
		MaxCost:     1 << 22, // 4MB
		BufferItems: 64,
		Metrics:     true,
		Cost:        costFunc,
	})
	if err != nil {
		return nil, err
	}

	return &Cache[T]{
		impl:      impl,
		cacheType: cacheType,
		ttl:       ttl,
	}, nil
}

func (c *Cache[T]) Get(key string) (T, bool) {
	return c.impl.Get(key)
}

// Set stores a value with the cache's TTL. A cost of 0 defers to the cost
// function.
func (c *Cache[T]) Set(key string, value T, cost int64) bool {
	return c.impl.SetWithTTL(key, value, cost, c.ttl)
}

func (c *Cache[T]) Clear() {
	c.impl.Clear()
}

// Wait blocks until buffered writes have been applied.
func (c *Cache[T]) Wait() {
	c.impl.Wait()
}

func (c *Cache[T]) Close() {
	c.impl.Close()
}

// Stats returns cache statistics for the health endpoint.
func (c *Cache[T]) Stats() map[string]interface{} {
	metrics := c.impl.Metrics

	hitRate := 0.0
	totalRequests := metrics.Hits() + metrics.Misses()
	if totalRequests > 0 {
		hitRate = float64(metrics.Hits()) / float64(totalRequests) * 100
	}

	return map[string]interface{}{
		"cache_type":     c.cacheType,
		"hits":           metrics.Hits(),
		"misses":         metrics.Misses(),
		"sets":           metrics.KeysAdded(),
		"total_requests": totalRequests,
		"hit_rate":       hitRate,
		"memory_used_kb": float64(metrics.CostAdded()-metrics.CostEvicted()) / 1024,
		"current_items":  metrics.KeysAdded() - metrics.KeysEvicted(),
	}
}
