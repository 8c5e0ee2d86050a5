// Package expiration implements the cache's pluggable expiration
// capability: marking freshness on writes/accesses and reporting which
// entries have gone stale. All methods are called inside the shard's
// critical section.
package expiration

import "time"

// Policy is a pluggable expiration capability, keyed by the cache's own
// key type rather than a stringified rendering (see SPEC_FULL.md §3's "key
// identity in expiration" note).
type Policy[K comparable] interface {
	// OnAccess is called after a successful Get hit.
	OnAccess(key K, now time.Time)

	// OnWrite is called after a Set, for both fresh inserts and replaces.
	OnWrite(key K, now time.Time)

	// IsExpired reports whether key's deadline has passed as of now. It
	// does not mutate state; callers are responsible for removing expired
	// entries and then calling OnRemove.
	IsExpired(key K, now time.Time) bool

	// Sweep returns every key whose deadline has passed as of now, without
	// removing them; a caller-driven eager sweep uses this list to remove
	// entries from the data map and then calls OnRemove for each.
	Sweep(now time.Time) []K

	// OnRemove prunes key's deadline record, keeping ExpirationState
	// consistent with the data map on explicit Remove, eviction, or lazy
	// expiry (data model invariant 2). Not part of spec.md's literal
	// four-method list, but required to satisfy it — see SPEC_FULL.md §4.3.
	OnRemove(key K)

	// Reset drops all policy-internal state in one step, used by Clear.
	Reset()
}
