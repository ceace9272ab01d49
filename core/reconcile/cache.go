package reconcile

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// listing is a cached file enumeration.
type listing struct {
	files []string
	built time.Time
}

// ListingCache holds file listings per source and root for a limited time.
// It lets repeated checks (e.g., HTTP requests) skip re-walking an unchanged tree.
type ListingCache struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]*listing
	sf      singleflight.Group
}

// NewListingCache creates a cache whose entries expire after ttl.
// A zero ttl disables caching: every Get lists again.
func NewListingCache(ttl time.Duration) *ListingCache {
	return &ListingCache{
		ttl:     ttl,
		entries: make(map[string]*listing),
	}
}

// TTL returns the configured time-to-live.
func (c *ListingCache) TTL() time.Duration {
	return c.ttl
}

func (c *ListingCache) expired(l *listing) bool {
	if c.ttl == 0 {
		return true
	}
	return time.Since(l.built) > c.ttl
}

// Get returns the listing of root from source, reusing a fresh cached one when available.
// Concurrent misses for the same key share a single listing call.
func (c *ListingCache) Get(ctx context.Context, source Source, root string) ([]string, error) {
	key := cacheKey(source, root)

	// Fast path
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if exists && !c.expired(entry) {
		return entry.files, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		c.mu.RLock()
		entry, exists := c.entries[key]
		c.mu.RUnlock()

		if exists && !c.expired(entry) {
			return entry.files, nil
		}

		files, err := source.ListFiles(ctx, root)
		if err != nil {
			return nil, err
		}

		if c.ttl > 0 {
			c.mu.Lock()
			c.entries[key] = &listing{files: files, built: time.Now()}
			c.mu.Unlock()
		}

		return files, nil
	})
	if err != nil {
		return nil, err
	}

	return result.([]string), nil
}

// Invalidate drops the cached listing of root from source.
func (c *ListingCache) Invalidate(source Source, root string) {
	c.mu.Lock()
	delete(c.entries, cacheKey(source, root))
	c.mu.Unlock()
}

func cacheKey(source Source, root string) string {
	return source.Name() + "|" + root
}
