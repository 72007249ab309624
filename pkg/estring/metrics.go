package estring

// metrics.go mirrors the teacher's pkg/metrics.go: a tiny sink interface so
// the hot path (Shard.insert / Shard.getExisting) never pays for a
// Prometheus label lookup unless a caller opted in via
// Configure(WithMetrics(reg)). Metric names and shapes are documented in
// SPEC_FULL.md §A.3.
//
// © 2025 estring authors. MIT License.

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// metricsSink abstracts the concrete telemetry backend away from shard.go.
type metricsSink interface {
	incInterned(shardIdx int)
	incLookup(shardIdx int, hit bool)
	incRotation(shardIdx int)
	setEntries(shardIdx int, n int)
	setArenaBytes(shardIdx int, used, capacity int64)
}

type noopMetrics struct{}

func (noopMetrics) incInterned(int)                 {}
func (noopMetrics) incLookup(int, bool)              {}
func (noopMetrics) incRotation(int)                  {}
func (noopMetrics) setEntries(int, int)              {}
func (noopMetrics) setArenaBytes(int, int64, int64)  {}

type promMetrics struct {
	interned   *prometheus.CounterVec
	lookups    *prometheus.CounterVec
	rotations  *prometheus.CounterVec
	entries    *prometheus.GaugeVec
	arenaBytes *prometheus.GaugeVec
}

func newPromMetrics(reg *prometheus.Registry) *promMetrics {
	shardLabel := []string{"shard"}

	pm := &promMetrics{
		interned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "estring",
			Name:      "interned_total",
			Help:      "Number of strings newly interned (excludes cache hits).",
		}, shardLabel),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "estring",
			Name:      "lookups_total",
			Help:      "Number of Intern/InternIfPresent calls, labeled by hit/miss.",
		}, []string{"shard", "result"}),
		rotations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "estring",
			Name:      "arena_rotations_total",
			Help:      "Number of times a shard grew a new arena.",
		}, shardLabel),
		entries: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "estring",
			Name:      "entries",
			Help:      "Live interned-string count per shard.",
		}, shardLabel),
		arenaBytes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "estring",
			Name:      "arena_bytes",
			Help:      "Bytes reserved across all arenas owned by a shard.",
		}, shardLabel),
	}

	reg.MustRegister(pm.interned, pm.lookups, pm.rotations, pm.entries, pm.arenaBytes)
	return pm
}

func (m *promMetrics) incInterned(shardIdx int) {
	m.interned.WithLabelValues(strconv.Itoa(shardIdx)).Inc()
}

func (m *promMetrics) incLookup(shardIdx int, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.lookups.WithLabelValues(strconv.Itoa(shardIdx), result).Inc()
}

func (m *promMetrics) incRotation(shardIdx int) {
	m.rotations.WithLabelValues(strconv.Itoa(shardIdx)).Inc()
}

func (m *promMetrics) setEntries(shardIdx int, n int) {
	m.entries.WithLabelValues(strconv.Itoa(shardIdx)).Set(float64(n))
}

func (m *promMetrics) setArenaBytes(shardIdx int, used, capacity int64) {
	m.arenaBytes.WithLabelValues(strconv.Itoa(shardIdx)).Set(float64(capacity))
	_ = used // capacity is what operators page on; used is exposed via Snapshot (debug.go) instead
}
