// Package cache provides a bounded, expiring key-value cache shared by
// the upstream clients.
package cache

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Cache is a capacity-bounded, TTL-expiring cache safe for concurrent
// use. A disabled cache misses on every lookup and drops every insert,
// so callers never branch on the cache-enabled flag themselves.
type Cache[V any] struct {
	lru     *expirable.LRU[string, V]
	enabled bool
}

// New creates a Cache holding at most capacity entries, each expiring
// ttl after insertion.
func New[V any](capacity int, ttl time.Duration, enabled bool) *Cache[V] {
	if capacity < 1 {
		capacity = 1
	}
	return &Cache[V]{
		lru:     expirable.NewLRU[string, V](capacity, nil, ttl),
		enabled: enabled,
	}
}

// Get returns the cached value for key, if present and not expired.
func (c *Cache[V]) Get(key string) (V, bool) {
	if !c.enabled {
		var zero V
		return zero, false
	}
	return c.lru.Get(key)
}

// Add inserts value under key, evicting the least recently used entry
// when at capacity.
func (c *Cache[V]) Add(key string, value V) {
	if !c.enabled {
		return
	}
	c.lru.Add(key, value)
}

// Len returns the number of live entries.
func (c *Cache[V]) Len() int {
	if !c.enabled {
		return 0
	}
	return c.lru.Len()
}

// Purge drops every entry.
func (c *Cache[V]) Purge() {
	if c.enabled {
		c.lru.Purge()
	}
}

// QueryKey builds a cache key from a query string. Keys are
// case-insensitive on the query text.
func QueryKey(prefix, langCode, query string) string {
	return fmt.Sprintf("%s:%s:%s", prefix, langCode, strings.ToLower(query))
}

// IDKey builds a cache key from a set of identifiers. Keys are
// order-insensitive: ids are sorted before key construction.
func IDKey[T int64 | string](prefix, langCode string, ids []T) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprint(id)
	}
	sort.Strings(parts)
	return fmt.Sprintf("%s:%s:%s", prefix, langCode, strings.Join(parts, "|"))
}
