// Package layered implements the layered (multi-tier) cache front-end: a
// fast L1 in front of a slower, usually larger L2, with promote-on-hit
// semantics. Grounded on original_source's LayeredCache, generalized to an
// arbitrary Tier so L1/L2 can each be a cache.Cache, a sharded.Cache, or
// another layered.Cache (nesting to more than two tiers).
package layered

import (
	"github.com/tierkv/tierkv/cache"
	"github.com/tierkv/tierkv/metrics"
	"github.com/tierkv/tierkv/sharded"
)

// Tier is the capability a layered.Cache needs from one of its tiers —
// the same shape as the module's Frontend contract, so cache.Cache,
// sharded.Cache, and layered.Cache itself all satisfy it, which is what
// lets tiers nest to more than two levels.
type Tier[K comparable, V any] interface {
	Get(key K) (V, bool)
	Set(key K, value V) error
	Remove(key K) (V, bool)
	Clear()
	Len() int
	IsEmpty() bool
	MetricsSnapshot() metrics.Snapshot
	SnapshotEntries() []cache.Entry[K, V]
}

// Cache composes two tiers: l1 is probed first; an l2 hit is promoted into
// l1 so the next Get for that key is served from the faster tier.
type Cache[K comparable, V any] struct {
	l1 Tier[K, V]
	l2 Tier[K, V]
}

// New composes l1 in front of l2.
func New[K comparable, V any](l1, l2 Tier[K, V]) *Cache[K, V] {
	return &Cache[K, V]{l1: l1, l2: l2}
}

// Get probes l1 first; on an l1 miss it falls through to l2 and, on an l2
// hit, promotes the value into l1 before returning it.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	if v, ok := c.l1.Get(key); ok {
		return v, true
	}
	v, ok := c.l2.Get(key)
	if !ok {
		var zero V
		return zero, false
	}
	// Best-effort promotion: an L1 that is itself full and refuses the
	// write (ErrCacheFull) does not fail the read.
	_ = c.l1.Set(key, v)
	return v, true
}

// Set writes through to both tiers.
func (c *Cache[K, V]) Set(key K, value V) error {
	if err := c.l1.Set(key, value); err != nil {
		return err
	}
	return c.l2.Set(key, value)
}

// Remove deletes key from both tiers. Per the resolved "L2's value wins"
// rule (SPEC_FULL.md §4.6), the returned value and presence flag come from
// l2 whenever l2 held the key, even if l1 also held a (possibly stale)
// value for it; l1's value is returned only when l2 did not have the key.
func (c *Cache[K, V]) Remove(key K) (V, bool) {
	v1, ok1 := c.l1.Remove(key)
	if v2, ok2 := c.l2.Remove(key); ok2 {
		return v2, true
	}
	return v1, ok1
}

// Clear resets both tiers.
func (c *Cache[K, V]) Clear() {
	c.l1.Clear()
	c.l2.Clear()
}

// Len reports L2's entry count: L2 is the tier of record (L1 is a subset
// promoted from it), so this avoids double-counting promoted keys.
func (c *Cache[K, V]) Len() int { return c.l2.Len() }

// IsEmpty reports whether L2 holds no entries.
func (c *Cache[K, V]) IsEmpty() bool { return c.l2.IsEmpty() }

// MetricsSnapshot returns L2's counters. L1's hits/misses reflect promotion
// traffic rather than the layered cache's own logical Get/Set calls, so L2
// — which every Set and L1-miss Get touches — is the representative tier.
func (c *Cache[K, V]) MetricsSnapshot() metrics.Snapshot { return c.l2.MetricsSnapshot() }

// SnapshotEntries returns L2's live entries, the authoritative superset of
// what L1 holds.
func (c *Cache[K, V]) SnapshotEntries() []cache.Entry[K, V] { return c.l2.SnapshotEntries() }

var (
	_ Tier[string, int] = (*cache.Cache[string, int])(nil)
	_ Tier[string, int] = (*sharded.Cache[string, int])(nil)
	_ Tier[string, int] = (*Cache[string, int])(nil)
)
