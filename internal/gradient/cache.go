package gradient

import (
	"image/color"
	"sync"
)

// defaultCacheEntries bounds the cache; a full cache is emptied and refilled.
const defaultCacheEntries = 256

type cacheKey struct {
	side     string
	length   int
	fallback RGB
}

// Cache memoizes sampled sides by (side, length, fallback).
// Slices returned by Sample are shared between callers and must not be
// modified.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey][]RGB
	max     int
}

// NewCache creates a cache holding at most maxEntries sampled sides.
// A non-positive maxEntries uses the default bound.
func NewCache(maxEntries int) *Cache {
	if maxEntries <= 0 {
		maxEntries = defaultCacheEntries
	}
	return &Cache{
		entries: make(map[cacheKey][]RGB),
		max:     maxEntries,
	}
}

// Sample returns the per-cell colors for side, computing them on a miss.
// The side must be present; an absent side is the caller's plain color and
// is never sampled.
func (c *Cache) Sample(side Side, length int, fallback color.Color) ([]RGB, error) {
	key := cacheKey{side: side.Key(), length: length, fallback: ToRGB(fallback)}

	c.mu.RLock()
	cells, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return cells, nil
	}

	cells, err := Sampler{Default: fallback}.Sample(side.colors, length)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if len(c.entries) >= c.max {
		c.entries = make(map[cacheKey][]RGB)
	}
	c.entries[key] = cells
	c.mu.Unlock()

	return cells, nil
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Reset drops all cached entries.
func (c *Cache) Reset() {
	c.mu.Lock()
	c.entries = make(map[cacheKey][]RGB)
	c.mu.Unlock()
}
