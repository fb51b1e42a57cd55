package client

import (
	"net/url"
	"strings"
	"sync"
)

// queryCache keeps decoded responses by route. Entries never expire; they
// are dropped by invalidation only. gen advances on every invalidation so a
// response loaded before it cannot be stored after it.
type queryCache struct {
	mu      sync.RWMutex
	entries map[string]any
	gen     uint64
}

func newQueryCache() *queryCache {
	return &queryCache{entries: make(map[string]any)}
}

func cacheKey(route string, query url.Values) string {
	if len(query) == 0 {
		return route
	}
	return route + "?" + query.Encode()
}

func (c *queryCache) get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *queryCache) generation() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gen
}

// set stores v unless the cache was invalidated after gen was read.
func (c *queryCache) set(key string, v any, gen uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.gen != gen {
		return false
	}
	c.entries[key] = v
	return true
}

func (c *queryCache) invalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
}

func (c *queryCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gen++
	c.entries = make(map[string]any)
}

func (c *queryCache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
