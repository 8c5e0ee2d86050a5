package cache

import "errors"

// Error taxonomy per spec §7. Callers compare with errors.Is; components
// downstream of Cache (sharded, layered, persistence) reuse these sentinels
// rather than declaring their own, so a caller only ever checks one set of
// errors regardless of which front-end raised them.
var (
	// ErrCacheFull is returned by Set when the shard is at capacity and the
	// active eviction policy refuses to select a victim.
	ErrCacheFull = errors.New("cache: full")

	// ErrInvalidKey is returned when a key fails a front-end's own
	// validity check (e.g. a sharded cache key type that can't be hashed).
	ErrInvalidKey = errors.New("cache: invalid key")

	// ErrSerialization wraps a codec failure while encoding entries for
	// persistence.
	ErrSerialization = errors.New("cache: serialization error")

	// ErrDeserialization wraps a codec failure while decoding a persisted
	// byte stream.
	ErrDeserialization = errors.New("cache: deserialization error")

	// ErrPersistence wraps a sink failure (the byte stream itself could not
	// be written or read).
	ErrPersistence = errors.New("cache: persistence error")

	// ErrTimeout is returned when a caller-imposed timeout elapses at the
	// lock-acquisition boundary, before any state change.
	ErrTimeout = errors.New("cache: timeout")
)
