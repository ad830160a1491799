package text

import (
	"cmp"
	"slices"
	"sync"
)

// defaultGlyphCacheLimit bounds the per-face rune measurement caches.
const defaultGlyphCacheLimit = 1024

// Cache is a generic thread-safe LRU cache with a soft limit.
// When the cache grows past the limit, the least recently used entries are
// evicted until a quarter of the capacity is free again.
//
// The metric providers use it to memoize per-rune measurements: the layout
// measures each rune twice (line breaking, then glyph placement) and a text
// field re-lays out on every keystroke.
//
// Cache must not be copied after creation.
type Cache[K comparable, V any] struct {
	mu        sync.Mutex
	entries   map[K]*cacheEntry[V]
	softLimit int
	tick      int64
}

type cacheEntry[V any] struct {
	value V
	atime int64
}

// NewCache creates a cache with the given soft limit. Zero means unlimited.
func NewCache[K comparable, V any](softLimit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries:   make(map[K]*cacheEntry[V]),
		softLimit: softLimit,
	}
}

// Get returns the cached value for key.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	c.touch(entry)
	return entry.value, true
}

// Set stores value under key.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.insert(key, value)
}

// GetOrCreate returns the cached value for key, calling create on a miss.
// create runs under the cache lock, so it is never called concurrently;
// providers rely on this to drive font faces that are not goroutine-safe.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok {
		c.touch(entry)
		return entry.value
	}
	value := create()
	c.insert(key, value)
	return value
}

// Clear removes all entries.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*cacheEntry[V])
	c.tick = 0
}

// Len returns the number of entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// touch marks entry as most recently used. Caller must hold c.mu.
func (c *Cache[K, V]) touch(entry *cacheEntry[V]) {
	c.tick++
	entry.atime = c.tick
}

// insert stores value and evicts if over the limit. Caller must hold c.mu.
func (c *Cache[K, V]) insert(key K, value V) {
	c.tick++
	c.entries[key] = &cacheEntry[V]{value: value, atime: c.tick}

	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
}

// evictOldest drops least recently used entries down to 3/4 of the limit.
// Caller must hold c.mu.
func (c *Cache[K, V]) evictOldest() {
	target := max(c.softLimit*3/4, 1)
	toEvict := len(c.entries) - target
	if toEvict <= 0 {
		return
	}

	type aged struct {
		key   K
		atime int64
	}
	order := make([]aged, 0, len(c.entries))
	for key, e := range c.entries {
		order = append(order, aged{key: key, atime: e.atime})
	}
	slices.SortFunc(order, func(a, b aged) int {
		return cmp.Compare(a.atime, b.atime)
	})

	for _, e := range order[:toEvict] {
		delete(c.entries, e.key)
	}
}
