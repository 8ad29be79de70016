package cache

import (
	"sync"
	"time"

	"birdfeed/internal/domain"
)

// ThumbCache caches Vimeo thumbnail lookups by video ID, saving one remote
// call per repeated video within the TTL window.
type ThumbCache struct {
	mu      sync.RWMutex
	entries map[string]thumbEntry
	ttl     time.Duration
}

type thumbEntry struct {
	thumbs    domain.Thumbnails
	expiresAt time.Time
}

// NewThumbCache creates a thumbnail cache with the given TTL.
func NewThumbCache(ttl time.Duration) *ThumbCache {
	return &ThumbCache{entries: make(map[string]thumbEntry), ttl: ttl}
}

// Get retrieves cached thumbnails for a video ID.
func (c *ThumbCache) Get(id string) (domain.Thumbnails, bool) {
	c.mu.RLock()
	entry, ok := c.entries[id]
	c.mu.RUnlock()
	if !ok {
		return domain.Thumbnails{}, false
	}
	if time.Now().After(entry.expiresAt) {
		c.mu.Lock()
		delete(c.entries, id)
		c.mu.Unlock()
		return domain.Thumbnails{}, false
	}
	return entry.thumbs, true
}

// Set stores thumbnails for a video ID.
func (c *ThumbCache) Set(id string, thumbs domain.Thumbnails) {
	c.mu.Lock()
	c.entries[id] = thumbEntry{thumbs: thumbs, expiresAt: time.Now().Add(c.ttl)}
	c.mu.Unlock()
}
