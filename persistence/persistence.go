// Package persistence implements the persistent cache front-end: mediating
// Snapshot/Restore between a Target cache and an injected Codec/ByteSink
// pair, grounded on original_source's PersistentCache and serialization
// helpers (spec.md §4.7).
package persistence

import (
	"errors"
	"fmt"

	"github.com/tierkv/tierkv/cache"
)

// Target is the capability persistence needs from the cache it persists.
// cache.Cache and sharded.Cache both satisfy it.
type Target[K comparable, V any] interface {
	Set(key K, value V) error
	SnapshotEntries() []cache.Entry[K, V]
}

// Codec turns a slice of entries into an opaque byte blob and back. Key
// stringification/parsing is pushed to the caller (see jsoncodec) so the
// codec itself stays generic over arbitrary comparable K.
type Codec[K comparable, V any] interface {
	Encode(entries []cache.Entry[K, V]) ([]byte, error)
	Decode(data []byte) ([]cache.Entry[K, V], error)
}

// ByteSink writes and reads an opaque blob. filesink and badgersink both
// implement it.
type ByteSink interface {
	Write(data []byte) error
	Read() ([]byte, error)
	Exists() (bool, error)
}

// Cache mediates Snapshot/Restore for a Target against a Codec and a
// ByteSink, without owning the target cache itself.
type Cache[K comparable, V any] struct {
	target Target[K, V]
	codec  Codec[K, V]
	sink   ByteSink
}

// New constructs a persistence mediator over an existing target cache.
func New[K comparable, V any](target Target[K, V], codec Codec[K, V], sink ByteSink) *Cache[K, V] {
	return &Cache[K, V]{target: target, codec: codec, sink: sink}
}

// Snapshot encodes the target's current live entries and writes them to
// the sink.
func (c *Cache[K, V]) Snapshot() error {
	entries := c.target.SnapshotEntries()
	data, err := c.codec.Encode(entries)
	if err != nil {
		return fmt.Errorf("%w: %v", cache.ErrSerialization, err)
	}
	if err := c.sink.Write(data); err != nil {
		return fmt.Errorf("%w: %v", cache.ErrPersistence, err)
	}
	return nil
}

// Restore reads the sink, decodes it, and replays every entry into the
// target through its normal Set — so capacity and eviction are honored
// exactly as they would be for a live caller. It stops at the first
// failing Set, per spec.md §4.7/§7. If the sink has nothing to restore
// (Exists reports false), Restore is a no-op returning nil.
func (c *Cache[K, V]) Restore() error {
	ok, err := c.sink.Exists()
	if err != nil {
		return fmt.Errorf("%w: %v", cache.ErrPersistence, err)
	}
	if !ok {
		return nil
	}

	data, err := c.sink.Read()
	if errors.Is(err, ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %v", cache.ErrPersistence, err)
	}

	entries, err := c.codec.Decode(data)
	if err != nil {
		return fmt.Errorf("%w: %v", cache.ErrDeserialization, err)
	}

	for _, e := range entries {
		if err := c.target.Set(e.Key, e.Value); err != nil {
			return fmt.Errorf("restore stopped at key %v: %w", e.Key, err)
		}
	}
	return nil
}

// ErrNotFound may be returned by a ByteSink's Read when no Write has ever
// succeeded; Restore treats it the same as Exists()==false.
var ErrNotFound = errors.New("persistence: no snapshot found")
