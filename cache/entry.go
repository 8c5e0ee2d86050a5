package cache

import "time"

// entry is owned exclusively by the shard that holds it. Eviction and
// expiration state live outside entry (see SPEC_FULL.md §3); entry itself
// only carries what Get/Set need to answer directly.
type entry[V any] struct {
	value        V
	insertedAt   time.Time
	lastAccessAt time.Time
}
