package cache

import (
	"context"
	"sync"

	"github.com/tierkv/tierkv/events"
	"github.com/tierkv/tierkv/internal/singleflight"
	"github.com/tierkv/tierkv/metrics"
)

// Entry is a single key/value pair as returned by SnapshotEntries, and the
// unit persistence round-trips.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Cache is a single independently-locked shard: the bounded, concurrent map
// described in spec.md §4.4. All methods are safe for concurrent use; every
// mutating operation runs under one mutex so the data map, the eviction
// policy's state, and the expiration policy's state are updated as one
// atomic unit (spec.md §5).
type Cache[K comparable, V any] struct {
	mu   sync.Mutex
	data map[K]*entry[V]

	capacity int
	opt      Options[K, V]
	metrics  *metrics.Metrics

	sf singleflight.Group[K, V]
}

// ErrNoLoader is returned by GetOrLoad when no Loader was configured.
var ErrNoLoader = &sentinelErr{"cache: no Loader configured"}

type sentinelErr struct{ s string }

func (e *sentinelErr) Error() string { return e.s }

// New constructs a Cache from Options. Capacity must be > 0.
func New[K comparable, V any](opt Options[K, V]) *Cache[K, V] {
	if opt.Capacity <= 0 {
		panic("cache: Capacity must be > 0")
	}
	return &Cache[K, V]{
		data:     make(map[K]*entry[V], opt.Capacity),
		capacity: opt.Capacity,
		opt:      opt.withDefaults(),
		metrics:  metrics.New(),
	}
}

// Get returns the value for key and whether it was present and fresh.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	now := c.opt.Clock.Now()

	c.mu.Lock()
	ent, present := c.data[key]
	if present && c.opt.Expiration.IsExpired(key, now) {
		delete(c.data, key)
		c.opt.Eviction.OnRemove(key)
		c.opt.Expiration.OnRemove(key)
		c.metrics.Miss()
		c.opt.Recorder.Miss()
		c.mu.Unlock()
		c.publish(events.Event[K]{Kind: events.Expire, Key: key})
		var zero V
		return zero, false
	}
	if !present {
		c.metrics.Miss()
		c.opt.Recorder.Miss()
		c.mu.Unlock()
		c.publish(events.Event[K]{Kind: events.Miss, Key: key})
		var zero V
		return zero, false
	}

	ent.lastAccessAt = now
	value := ent.value
	c.opt.Eviction.OnAccess(key)
	c.opt.Expiration.OnAccess(key, now)
	c.metrics.Hit()
	c.opt.Recorder.Hit()
	c.mu.Unlock()

	c.publish(events.Event[K]{Kind: events.Hit, Key: key})
	return value, true
}

// Set inserts or updates key. On overflow it asks the eviction policy for a
// victim; if the policy refuses, Set fails with ErrCacheFull and leaves the
// shard's state unchanged (spec.md §4.4, §7).
func (c *Cache[K, V]) Set(key K, value V) error {
	now := c.opt.Clock.Now()

	c.mu.Lock()
	if ent, ok := c.data[key]; ok {
		ent.value = value
		ent.lastAccessAt = now
		c.opt.Eviction.OnWrite(key, true)
		c.opt.Expiration.OnWrite(key, now)
		c.metrics.Write()
		c.opt.Recorder.Write()
		c.mu.Unlock()
		c.publish(events.Event[K]{Kind: events.Write, Key: key, Replaced: true})
		return nil
	}

	var evictedKey K
	evicted := false
	if len(c.data) >= c.capacity {
		victim, ok := c.opt.Eviction.SelectVictim()
		if !ok {
			c.mu.Unlock()
			return ErrCacheFull
		}
		delete(c.data, victim)
		c.opt.Eviction.OnRemove(victim)
		c.opt.Expiration.OnRemove(victim)
		c.metrics.Evict()
		c.opt.Recorder.Evict()
		evictedKey, evicted = victim, true
	}

	c.data[key] = &entry[V]{value: value, insertedAt: now, lastAccessAt: now}
	c.opt.Eviction.OnWrite(key, false)
	c.opt.Expiration.OnWrite(key, now)
	c.metrics.Write()
	c.opt.Recorder.Write()
	c.mu.Unlock()

	if evicted {
		c.publish(events.Event[K]{Kind: events.Evict, Key: evictedKey})
	}
	c.publish(events.Event[K]{Kind: events.Write, Key: key, Replaced: false})
	return nil
}

// Remove deletes key if present, returning its prior value.
func (c *Cache[K, V]) Remove(key K) (V, bool) {
	c.mu.Lock()
	ent, ok := c.data[key]
	if !ok {
		c.mu.Unlock()
		var zero V
		return zero, false
	}
	delete(c.data, key)
	c.opt.Eviction.OnRemove(key)
	c.opt.Expiration.OnRemove(key)
	c.metrics.Removal()
	c.opt.Recorder.Removal()
	c.mu.Unlock()

	c.publish(events.Event[K]{Kind: events.Remove, Key: key})
	return ent.value, true
}

// Clear drops all entries and resets policy and metrics state in bulk.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	c.data = make(map[K]*entry[V], c.capacity)
	c.opt.Eviction.Reset()
	c.opt.Expiration.Reset()
	c.metrics.Reset()
	c.mu.Unlock()

	c.publish(events.Event[K]{Kind: events.Clear})
}

// Len returns the number of resident entries.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.data)
}

// IsEmpty reports whether the shard holds no entries.
func (c *Cache[K, V]) IsEmpty() bool {
	return c.Len() == 0
}

// MetricsSnapshot returns a linearized read of the five counters.
func (c *Cache[K, V]) MetricsSnapshot() metrics.Snapshot {
	return c.metrics.Snapshot()
}

// SnapshotEntries clones all live (non-expired) entries under the lock,
// without mutating policy state — expired entries are skipped, not evicted.
func (c *Cache[K, V]) SnapshotEntries() []Entry[K, V] {
	now := c.opt.Clock.Now()
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Entry[K, V], 0, len(c.data))
	for k, e := range c.data {
		if c.opt.Expiration.IsExpired(k, now) {
			continue
		}
		out = append(out, Entry[K, V]{Key: k, Value: e.value})
	}
	return out
}

// GetOrLoad returns the value for key, loading it via Options.Loader on
// miss. Concurrent loads for the same key are coalesced via singleflight.
// Additive convenience on top of Get/Set; see SPEC_FULL.md §4.4.
func (c *Cache[K, V]) GetOrLoad(ctx context.Context, key K) (V, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	if c.opt.Loader == nil {
		var zero V
		return zero, ErrNoLoader
	}
	return c.sf.Do(ctx, key, func() (V, error) {
		if v, ok := c.Get(key); ok {
			return v, nil
		}
		v, err := c.opt.Loader(ctx, key)
		if err == nil {
			_ = c.Set(key, v)
		}
		return v, err
	})
}

// publish is a no-op when no event bus is configured; otherwise it must run
// after the critical section has released the lock (spec.md §4.8).
func (c *Cache[K, V]) publish(ev events.Event[K]) {
	if c.opt.Events != nil {
		c.opt.Events.Publish(ev)
	}
}
