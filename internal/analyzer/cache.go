package analyzer

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds the in-memory result cache
const DefaultCacheSize = 1024

// Cache provides in-memory LRU caching of analysis results by content
// hash, so re-analyzing an unchanged chunk skips the API call. It holds
// nothing across process restarts.
type Cache struct {
	cache *lru.Cache[string, string]
}

// NewCache creates a new analysis cache with LRU eviction
func NewCache(maxLen int) *Cache {
	if maxLen <= 0 {
		maxLen = DefaultCacheSize
	}
	cache, err := lru.New[string, string](maxLen)
	if err != nil {
		// Should never happen with positive size, but fallback to default
		cache, _ = lru.New[string, string](DefaultCacheSize)
	}
	return &Cache{cache: cache}
}

// Get retrieves a cached analysis by hash
func (c *Cache) Get(hash string) (string, bool) {
	return c.cache.Get(hash)
}

// Set stores an analysis with automatic LRU eviction
func (c *Cache) Set(hash, analysis string) {
	c.cache.Add(hash, analysis)
}

// Size returns the current cache size
func (c *Cache) Size() int {
	return c.cache.Len()
}

// Clear empties the cache
func (c *Cache) Clear() {
	c.cache.Purge()
}
