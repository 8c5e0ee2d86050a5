// Package prom adapts metrics.Recorder to Prometheus counters and a size
// gauge, for applications that scrape rather than poll MetricsSnapshot.
package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/tierkv/tierkv/metrics"
)

// Adapter implements metrics.Recorder and exports Prometheus counters. Safe
// for concurrent use; Prometheus metric types are goroutine-safe.
type Adapter struct {
	hits     prometheus.Counter
	misses   prometheus.Counter
	writes   prometheus.Counter
	evicts   prometheus.Counter
	removals prometheus.Counter
	size     prometheus.Gauge
}

// New constructs a Prometheus metrics adapter and registers it with reg
// (nil => prometheus.DefaultRegisterer).
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	mk := func(name, help string) prometheus.Counter {
		return prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: ns, Subsystem: sub, Name: name, Help: help, ConstLabels: constLabels,
		})
	}
	a := &Adapter{
		hits:     mk("hits_total", "Cache hits"),
		misses:   mk("misses_total", "Cache misses"),
		writes:   mk("writes_total", "Cache writes (inserts and updates)"),
		evicts:   mk("evictions_total", "Cache evictions"),
		removals: mk("removals_total", "Explicit cache removals"),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: ns, Subsystem: sub, Name: "size_entries", Help: "Resident entries", ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(a.hits, a.misses, a.writes, a.evicts, a.removals, a.size)
	return a
}

func (a *Adapter) Hit()     { a.hits.Inc() }
func (a *Adapter) Miss()    { a.misses.Inc() }
func (a *Adapter) Write()   { a.writes.Inc() }
func (a *Adapter) Evict()   { a.evicts.Inc() }
func (a *Adapter) Removal() { a.removals.Inc() }

// SetSize updates the resident-entries gauge. Callers typically invoke this
// from a periodic poll of Cache.Len(), since eviction/expiration counts
// alone don't reflect current size.
func (a *Adapter) SetSize(n int) { a.size.Set(float64(n)) }

var _ metrics.Recorder = (*Adapter)(nil)
