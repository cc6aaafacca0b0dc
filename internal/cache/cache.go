// Package cache keeps raw catalog records keyed by card id across runs.
// Entries never expire; a record is only replaced when freshly fetched.
package cache

import (
	"context"
	"encoding/json"
	"sort"
)

// Cache maps card ids to raw catalog records. It is not safe for
// concurrent use.
type Cache struct {
	entries map[string]json.RawMessage
	dirty   bool
}

// New creates an empty cache
func New() *Cache {
	return &Cache{entries: make(map[string]json.RawMessage)}
}

// Get returns the cached record for id, or nil and false on miss
func (c *Cache) Get(id string) (json.RawMessage, bool) {
	raw, ok := c.entries[id]
	return raw, ok
}

// Put stores a record, replacing any existing entry
func (c *Cache) Put(id string, raw json.RawMessage) {
	c.entries[id] = raw
	c.dirty = true
}

// Len returns the number of cached records
func (c *Cache) Len() int {
	return len(c.entries)
}

// IDs returns the cached ids sorted
func (c *Cache) IDs() []string {
	ids := make([]string, 0, len(c.entries))
	for id := range c.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Dirty reports whether Put was called since the cache was loaded
func (c *Cache) Dirty() bool {
	return c.dirty
}

// Store persists a Cache wholesale
type Store interface {
	// Load returns the persisted cache, or an empty one if nothing was saved yet
	Load(ctx context.Context) (*Cache, error)
	// Save replaces the persisted cache with c
	Save(ctx context.Context, c *Cache) error
	Close() error
}
