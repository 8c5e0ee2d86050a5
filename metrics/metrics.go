// Package metrics implements the cache's monotonic counter surface: atomic
// increment on the hot path, and a single-lock snapshot/reset pair so all
// five counters are observed (or zeroed) at one linearization point.
package metrics

import (
	"sync"

	"github.com/tierkv/tierkv/internal/util"
)

// Recorder lets a Cache forward its lifecycle events to an external sink
// (e.g. a Prometheus adapter) in addition to its own atomic counters.
type Recorder interface {
	Hit()
	Miss()
	Write()
	Evict()
	Removal()
}

// NoopRecorder discards every event. It is the default Recorder.
type NoopRecorder struct{}

func (NoopRecorder) Hit()     {}
func (NoopRecorder) Miss()    {}
func (NoopRecorder) Write()   {}
func (NoopRecorder) Evict()   {}
func (NoopRecorder) Removal() {}

// Snapshot is a linearized read of all five counters.
type Snapshot struct {
	Hits      uint64
	Misses    uint64
	Writes    uint64
	Evictions uint64
	Removals  uint64
}

// Metrics holds the five required counters: hits, misses, writes,
// evictions, removals. Increments are lock-free atomics; Snapshot and Reset
// additionally take snapMu so the group of five is read or zeroed as one
// unit, per spec's "single linearization point" requirement.
type Metrics struct {
	snapMu sync.Mutex

	hits      util.PaddedAtomicUint64
	misses    util.PaddedAtomicUint64
	writes    util.PaddedAtomicUint64
	evictions util.PaddedAtomicUint64
	removals  util.PaddedAtomicUint64
}

// New returns a zeroed Metrics.
func New() *Metrics { return &Metrics{} }

func (m *Metrics) Hit()      { m.hits.Add(1) }
func (m *Metrics) Miss()     { m.misses.Add(1) }
func (m *Metrics) Write()    { m.writes.Add(1) }
func (m *Metrics) Evict()    { m.evictions.Add(1) }
func (m *Metrics) Removal()  { m.removals.Add(1) }

// Snapshot returns all five counters as read under snapMu.
func (m *Metrics) Snapshot() Snapshot {
	m.snapMu.Lock()
	defer m.snapMu.Unlock()
	return Snapshot{
		Hits:      m.hits.Load(),
		Misses:    m.misses.Load(),
		Writes:    m.writes.Load(),
		Evictions: m.evictions.Load(),
		Removals:  m.removals.Load(),
	}
}

// Reset zeroes all five counters under snapMu, so a Snapshot never observes
// a partial reset. An increment racing with Reset may land before or after
// its counter is zeroed.
func (m *Metrics) Reset() {
	m.snapMu.Lock()
	defer m.snapMu.Unlock()
	m.hits.Store(0)
	m.misses.Store(0)
	m.writes.Store(0)
	m.evictions.Store(0)
	m.removals.Store(0)
}
