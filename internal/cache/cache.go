// Package cache memoizes engine computations against one grid snapshot.
package cache

import "sync"

// Key identifies one memoized computation: the operation, the subject
// location, and a variant discriminator (duration cap, mode, timestamp —
// whatever parameters change the result).
type Key struct {
	Op       string
	Location int
	Variant  string
}

// Cache is a snapshot-scoped memo table. It is bound to exactly one
// snapshot version at a time; rebinding to a new version drops every entry
// wholesale — a snapshot swap is atomic and total, so there is no
// incremental invalidation. An RWMutex keeps parallel tile evaluation safe;
// writes are idempotent, so two goroutines racing to store the same key is
// harmless.
type Cache struct {
	mu      sync.RWMutex
	version string
	entries map[Key]any
}

// New creates an empty cache bound to no snapshot.
func New() *Cache {
	return &Cache{entries: make(map[Key]any)}
}

// BindSnapshot binds the cache to a snapshot version, clearing all entries
// if the version changed. Binding the current version again is a no-op.
func (c *Cache) BindSnapshot(version string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.version == version {
		return
	}
	c.version = version
	c.entries = make(map[Key]any)
}

// Version returns the currently bound snapshot version.
func (c *Cache) Version() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// Get returns the memoized value for key under the given snapshot version.
// A version mismatch is always a miss: stale results must never be served.
func (c *Cache) Get(version string, key Key) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.version != version {
		return nil, false
	}
	v, ok := c.entries[key]
	return v, ok
}

// Put stores a value for key. Writes against a version other than the bound
// one are dropped — an engine still computing against a replaced snapshot
// must not pollute the new one's cache.
func (c *Cache) Put(version string, key Key, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.version != version {
		return
	}
	c.entries[key] = value
}

// Len returns the number of memoized entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
