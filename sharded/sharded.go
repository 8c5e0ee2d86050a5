// Package sharded implements the sharded cache front-end: N independently
// locked cache.Cache shards behind a single stable-hash routing layer, so
// lock contention is spread across shards instead of one global mutex
// (spec.md §4.5).
package sharded

import (
	"context"

	"github.com/tierkv/tierkv/cache"
	"github.com/tierkv/tierkv/internal/util"
	"github.com/tierkv/tierkv/metrics"
)

// Cache routes each key to one of N underlying cache.Cache shards by a
// stable hash of the key, so the same key always lands on the same shard
// for the lifetime of the Cache (spec invariant 6).
type Cache[K comparable, V any] struct {
	shards []*cache.Cache[K, V]
}

// New constructs a sharded cache with shardCount shards. newShardOptions is
// called once per shard and must return a fully configured Options,
// including Capacity — it exists because eviction.Policy and
// expiration.Policy instances hold per-key state and must never be shared
// across shards, so each shard needs its own freshly constructed policy
// rather than a single Options value reused by pointer.
func New[K comparable, V any](shardCount int, newShardOptions func() cache.Options[K, V]) *Cache[K, V] {
	if shardCount <= 0 {
		panic("sharded: shardCount must be > 0")
	}
	shards := make([]*cache.Cache[K, V], shardCount)
	for i := range shards {
		shards[i] = cache.New[K, V](newShardOptions())
	}
	return &Cache[K, V]{shards: shards}
}

func (c *Cache[K, V]) shardFor(key K) *cache.Cache[K, V] {
	h := util.Stable64(key)
	idx := util.ShardIndex(h, len(c.shards))
	return c.shards[idx]
}

// Get delegates to the owning shard.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	return c.shardFor(key).Get(key)
}

// Set delegates to the owning shard; an ErrCacheFull from that shard does
// not affect the others.
func (c *Cache[K, V]) Set(key K, value V) error {
	return c.shardFor(key).Set(key, value)
}

// Remove delegates to the owning shard.
func (c *Cache[K, V]) Remove(key K) (V, bool) {
	return c.shardFor(key).Remove(key)
}

// Clear resets every shard.
func (c *Cache[K, V]) Clear() {
	for _, s := range c.shards {
		s.Clear()
	}
}

// Len sums the resident entry count across all shards. Not a linearized
// read across shards: a concurrent writer can make this approximate,
// matching the teacher's own cache.Len semantics for a multi-shard cache.
func (c *Cache[K, V]) Len() int {
	total := 0
	for _, s := range c.shards {
		total += s.Len()
	}
	return total
}

// IsEmpty reports whether every shard is empty.
func (c *Cache[K, V]) IsEmpty() bool {
	return c.Len() == 0
}

// SnapshotEntries concatenates each shard's live entries. Not a single
// cross-shard linearization point, consistent with Len.
func (c *Cache[K, V]) SnapshotEntries() []cache.Entry[K, V] {
	var out []cache.Entry[K, V]
	for _, s := range c.shards {
		out = append(out, s.SnapshotEntries()...)
	}
	return out
}

// GetOrLoad delegates to the owning shard, so concurrent loads for the same
// key are coalesced per-shard.
func (c *Cache[K, V]) GetOrLoad(ctx context.Context, key K) (V, error) {
	return c.shardFor(key).GetOrLoad(ctx, key)
}

// ShardCount returns the number of underlying shards.
func (c *Cache[K, V]) ShardCount() int { return len(c.shards) }

var _ cache.Frontend[string, int] = (*Cache[string, int])(nil)

// MetricsSnapshot sums each shard's counters. Not a cross-shard
// linearization point, matching Len.
func (c *Cache[K, V]) MetricsSnapshot() metrics.Snapshot {
	var total metrics.Snapshot
	for _, s := range c.shards {
		snap := s.MetricsSnapshot()
		total.Hits += snap.Hits
		total.Misses += snap.Misses
		total.Writes += snap.Writes
		total.Evictions += snap.Evictions
		total.Removals += snap.Removals
	}
	return total
}
