// Package cache provides TTL in-memory caches for rendered posts and video
// thumbnails.
package cache

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"birdfeed/internal/domain"
)

// MemoryCache is an in-memory cache of rendered posts with TTL support.
type MemoryCache struct {
	entries sync.Map
	ttl     time.Duration
	stop    chan struct{}
}

type cacheEntry struct {
	rendered  *domain.RenderedTweet
	expiresAt time.Time
}

// NewMemoryCache creates a cache with the given TTL and starts its cleanup
// loop.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	c := &MemoryCache{ttl: ttl, stop: make(chan struct{})}
	go c.cleanup()
	return c
}

// NormalizedKey returns the cache key for a post: /{screenName}/status/{id}
// Handles are case-insensitive, so the key lowercases them; a lookup by
// "Alice" must hit the entry stored under the record's "alice".
func NormalizedKey(screenName, id string) string {
	return fmt.Sprintf("/%s/status/%s", strings.ToLower(screenName), id)
}

// Get retrieves a rendered post. found is false for absent or expired
// entries.
func (c *MemoryCache) Get(screenName, id string) (*domain.RenderedTweet, bool) {
	key := NormalizedKey(screenName, id)
	value, ok := c.entries.Load(key)
	if !ok {
		return nil, false
	}
	entry := value.(*cacheEntry)
	if time.Now().After(entry.expiresAt) {
		c.entries.Delete(key)
		return nil, false
	}
	return entry.rendered, true
}

// Set stores a rendered post with the configured TTL.
func (c *MemoryCache) Set(screenName, id string, rendered *domain.RenderedTweet) {
	c.entries.Store(NormalizedKey(screenName, id), &cacheEntry{
		rendered:  rendered,
		expiresAt: time.Now().Add(c.ttl),
	})
}

// Close stops the cleanup loop.
func (c *MemoryCache) Close() {
	close(c.stop)
}

func (c *MemoryCache) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-c.stop:
			return
		case <-ticker.C:
			now := time.Now()
			c.entries.Range(func(key, value any) bool {
				if now.After(value.(*cacheEntry).expiresAt) {
					c.entries.Delete(key)
				}
				return true
			})
		}
	}
}
