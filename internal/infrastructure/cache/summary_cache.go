package cache

import (
	"context"
	"sync"
	"time"
)

// SummaryCache caches rendered dashboard summaries. Values are opaque JSON
// blobs keyed by summary name.
type SummaryCache interface {
	// Get returns the cached value for key, or ok=false when absent or expired
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set stores a value under key with the given TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Invalidate removes a cached value
	Invalidate(ctx context.Context, key string) error
}

// inMemoryEntry is a cached value with its expiration time
type inMemoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// InMemorySummaryCache provides an in-memory implementation for testing
// and single-instance deployments
// WARNING: cache state is not shared across process instances
type InMemorySummaryCache struct {
	mu      sync.RWMutex
	entries map[string]inMemoryEntry
}

// NewInMemorySummaryCache creates a new in-memory summary cache
func NewInMemorySummaryCache() *InMemorySummaryCache {
	return &InMemorySummaryCache{
		entries: make(map[string]inMemoryEntry),
	}
}

// Get returns the cached value for key
func (c *InMemorySummaryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, exists := c.entries[key]
	if !exists {
		return nil, false, nil
	}

	if time.Now().After(entry.expiresAt) {
		delete(c.entries, key)
		return nil, false, nil
	}

	return entry.value, true, nil
}

// Set stores a value under key with the given TTL
func (c *InMemorySummaryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = inMemoryEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}

// Invalidate removes a cached value
func (c *InMemorySummaryCache) Invalidate(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	return nil
}

// Ensure InMemorySummaryCache implements SummaryCache
var _ SummaryCache = (*InMemorySummaryCache)(nil)
