package solver

import "fmt"

// Cache maps a state fingerprint to the known-optimal remaining distance to
// the goal for the target robot that produced it. A single Cache is meant
// to be reused across many Solve calls within one driver run (e.g. an
// entire sweep), which is why it is constructed and owned by the caller
// rather than implicitly per-solve.
//
// Entries are never evicted: once a distance is known optimal it remains
// valid for the lifetime of the run, since the underlying geometry never
// changes. A map is used rather than a bounded/evicting cache because
// eviction would silently reintroduce work this cache exists to avoid.
type Cache struct {
	dist map[uint64]int
}

// NewCache returns an empty, ready-to-use Cache.
func NewCache() *Cache {
	return &Cache{dist: make(map[uint64]int)}
}

// Lookup returns the cached distance for fp, if known.
func (c *Cache) Lookup(fp uint64) (int, bool) {
	d, ok := c.dist[fp]
	return d, ok
}

// Store records dist as the known-optimal distance for fp. If fp was
// already recorded with a different distance, Store panics: the cache's
// whole value proposition depends on every entry being a true optimal
// distance, so a conflicting reinsertion means a bug upstream in the
// search, not a value to silently overwrite.
func (c *Cache) Store(fp uint64, dist int) {
	if existing, ok := c.dist[fp]; ok {
		if existing != dist {
			panic(fmt.Sprintf("solver: cache conflict for fingerprint %x: had %d, got %d", fp, existing, dist))
		}
		return
	}
	c.dist[fp] = dist
}

// Len returns the number of distinct fingerprints currently cached.
func (c *Cache) Len() int {
	return len(c.dist)
}
