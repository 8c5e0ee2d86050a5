package cache

import (
	"context"
	"time"

	"github.com/tierkv/tierkv/eviction"
	"github.com/tierkv/tierkv/events"
	"github.com/tierkv/tierkv/expiration"
	"github.com/tierkv/tierkv/metrics"
)

// Clock provides the current time; overridable in tests to avoid timing
// flakiness (teacher's cache/options.go pattern).
type Clock interface{ Now() time.Time }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// Loader fetches a value on a cache miss, for GetOrLoad.
type Loader[K comparable, V any] func(ctx context.Context, key K) (V, error)

// Options configures a Cache. Capacity and Eviction/Expiration are the only
// required-by-spec fields; everything else has a safe zero-value default
// applied in New.
type Options[K comparable, V any] struct {
	// Capacity is the maximum number of resident entries. Required, > 0.
	Capacity int

	// Eviction is the pluggable eviction capability. Nil => LRU.
	Eviction eviction.Policy[K]

	// Expiration is the pluggable expiration capability. Nil => no expiration.
	Expiration expiration.Policy[K]

	// Recorder forwards lifecycle events to an external sink (e.g. the
	// Prometheus adapter in metrics/prom). Nil => discarded.
	Recorder metrics.Recorder

	// Events, if set, receives Hit/Miss/Write/Evict/Remove/Clear/Expire
	// events after each mutating operation's critical section completes.
	Events *events.Bus[K]

	// Loader backs GetOrLoad; nil => GetOrLoad always returns ErrNoLoader.
	Loader Loader[K, V]

	// Clock overrides the time source; nil => time.Now().
	Clock Clock
}

func (o *Options[K, V]) withDefaults() Options[K, V] {
	out := *o
	if out.Eviction == nil {
		out.Eviction = eviction.NewLRU[K]()
	}
	if out.Expiration == nil {
		out.Expiration = expiration.NewNone[K]()
	}
	if out.Recorder == nil {
		out.Recorder = metrics.NoopRecorder{}
	}
	if out.Clock == nil {
		out.Clock = systemClock{}
	}
	return out
}
