// Package eviction implements the cache's pluggable eviction capability:
// Policy observes every access and write and selects a victim when the
// owning shard is at capacity. All methods are called inside the shard's
// critical section, so implementations need no locking of their own.
package eviction

// Policy is a pluggable eviction capability over key identity only —
// eviction state never references the data map directly (see
// SPEC_FULL.md §3), which is what lets SelectVictim return a key by value
// without racing the shard's own mutation of its map.
type Policy[K comparable] interface {
	// OnAccess is called after a successful Get hit.
	OnAccess(key K)

	// OnWrite is called after a Set, for both fresh inserts and replaces.
	OnWrite(key K, replaced bool)

	// SelectVictim is called only when the shard is at capacity, before a
	// new key is inserted. It must return a key currently tracked by the
	// policy, or ok=false if the policy refuses to evict (the caller then
	// fails the Set with ErrCacheFull).
	SelectVictim() (key K, ok bool)

	// OnRemove is called after any removal: explicit, evicted, or expired.
	OnRemove(key K)

	// Reset drops all policy-internal state in one step, used by Clear.
	Reset()
}
