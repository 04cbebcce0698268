// Package cache is a small keyed result cache with explicit invalidation.
// Each full reload recomputes everything from the current sheet text, so
// the cache only avoids re-fetching within one process run; there is no
// cross-run persistence.
package cache

import "sync"

// Cache maps string keys to computed values. Safe for concurrent use.
type Cache[V any] struct {
	mu      sync.RWMutex
	entries map[string]V
}

// New creates an empty cache.
func New[V any]() *Cache[V] {
	return &Cache[V]{entries: make(map[string]V)}
}

// Get returns the cached value for key, if present.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

// Put stores a value under key, replacing any previous one.
func (c *Cache[V]) Put(key string, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = v
}

// Invalidate removes one key.
func (c *Cache[V]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// Reset removes everything.
func (c *Cache[V]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]V)
}

// Len reports the number of cached entries.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
