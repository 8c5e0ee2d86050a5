package cache

import "github.com/tierkv/tierkv/metrics"

// Frontend is the contract every cache composition layer in this module
// implements: Cache itself, sharded.Cache, and layered.Cache.
type Frontend[K comparable, V any] interface {
	Get(key K) (V, bool)
	Set(key K, value V) error
	Remove(key K) (V, bool)
	Clear()
	Len() int
	IsEmpty() bool
	MetricsSnapshot() metrics.Snapshot
	SnapshotEntries() []Entry[K, V]
}

var _ Frontend[string, int] = (*Cache[string, int])(nil)
