// Package projcache provides a small bounded memoization cache for the
// multi-year revenue projection. The cache is a pure performance
// optimization: the cached function is deterministic, so removing the cache
// changes recomputation cost only, never a computed value.
package projcache

import (
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/agrifin/agriplan/pkg/constants"
	"github.com/agrifin/agriplan/pkg/finance"
)

// Cache is the interface the portfolio engine memoizes projections through.
// Callers own the cache instance; there is no package-level singleton.
//
// Get returns the stored value, not a copy: the projection's maps and slices
// are shared with every other caller of the same key, so consumers must treat
// a returned ProjectionResult as read-only.
type Cache interface {
	Get(key string) (finance.ProjectionResult, bool)
	Put(key string, value finance.ProjectionResult)
	Len() int
}

// FIFOCache is a bounded cache evicting the oldest-inserted entry once the
// configured maximum entry count is reached. Eviction follows insertion
// order only, not recency of use.
//
// A mutex guards the map. Concurrent callers may still race to compute and
// insert the same key; both compute the same value, so the last write wins
// harmlessly.
type FIFOCache struct {
	mu         sync.Mutex
	maxEntries int
	entries    map[string]finance.ProjectionResult
	order      []string
}

// NewFIFO creates a FIFOCache holding at most maxEntries entries. A
// non-positive maxEntries falls back to the default size.
func NewFIFO(maxEntries int) *FIFOCache {
	if maxEntries <= 0 {
		maxEntries = constants.DefaultProjectionCacheSize
	}
	return &FIFOCache{
		maxEntries: maxEntries,
		entries:    make(map[string]finance.ProjectionResult, maxEntries),
	}
}

// Get returns the cached projection for key, if present. The result shares
// its maps and slices with the cache; callers must not mutate it.
func (c *FIFOCache) Get(key string) (finance.ProjectionResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.entries[key]
	return value, ok
}

// Put stores a projection under key, evicting the oldest-inserted entry when
// the cache is full. Overwriting an existing key keeps its original
// insertion position.
func (c *FIFOCache) Put(key string, value finance.ProjectionResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		c.entries[key] = value
		return
	}

	if len(c.entries) >= c.maxEntries && len(c.order) > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[key] = value
	c.order = append(c.order, key)
}

// Len returns the current entry count.
func (c *FIFOCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// NormalizeKey bounds key size: raw keys longer than the configured maximum
// are replaced with a stable FNV-1a hash of themselves.
func NormalizeKey(raw string) string {
	if len(raw) <= constants.MaxProjectionKeyLength {
		return raw
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(raw))
	return fmt.Sprintf("fnv:%016x", h.Sum64())
}
