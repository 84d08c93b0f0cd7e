// Package cachemap implements a fixed-capacity memoizing cache that evicts
// entries in insertion order.
package cachemap

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache maps keys to values produced by a compute function. Once the
// capacity is reached the oldest inserted entry is dropped; reading an entry
// does not protect it from eviction.
//
// Cache is safe for concurrent use. Two goroutines missing the same key at the
// same time may both compute it; compute must be pure, so either result is
// valid.
type Cache[K comparable, V any] struct {
	store   *lru.Cache[K, V]
	compute func(K) V
	size    int
}

// New returns a cache holding at most size entries.
func New[K comparable, V any](size int, compute func(K) V) (*Cache[K, V], error) {
	if compute == nil {
		return nil, fmt.Errorf("cachemap: nil compute function")
	}
	store, err := lru.New[K, V](size)
	if err != nil {
		return nil, fmt.Errorf("cachemap: %w", err)
	}
	return &Cache[K, V]{store: store, compute: compute, size: size}, nil
}

// Get returns the cached value for key, computing and storing it on a miss.
func (c *Cache[K, V]) Get(key K) V {
	// Peek leaves the recency list untouched, so the underlying LRU
	// degenerates into a FIFO ring keyed by insertion time.
	if v, ok := c.store.Peek(key); ok {
		return v
	}
	v := c.compute(key)
	c.store.Add(key, v)
	return v
}

// Len returns the number of cached entries.
func (c *Cache[K, V]) Len() int { return c.store.Len() }

// Cap returns the capacity fixed at construction.
func (c *Cache[K, V]) Cap() int { return c.size }
