package estring

// config.go implements the observational configuration described in
// SPEC_FULL.md §A.2: nothing here changes the hashing, sharding, or growth
// contract (those are fixed at build/compile time, spec.md §6), it only
// attaches a logger and/or a Prometheus registry that new Shards pick up
// when they are lazily constructed.
//
// © 2025 estring authors. MIT License.

import (
	"errors"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

var (
	configMu   sync.RWMutex
	curLogger  = zap.NewNop()
	curMetrics = metricsSink(noopMetrics{})
)

// Option configures observability for Shards constructed after Configure
// runs. Shards already lazily initialized are unaffected — this mirrors the
// teacher's cache.New, which takes its options once at construction, but
// adapted to a registry whose "construction" is spread across first use of
// each of NBins Shards rather than a single call.
type Option func(*observConfig) error

type observConfig struct {
	logger  *zap.Logger
	metrics metricsSink
}

// WithLogger attaches a zap.Logger that subsequently constructed Shards use
// for rotation/abort diagnostics (spec.md §A.1). l must not be nil.
func WithLogger(l *zap.Logger) Option {
	return func(c *observConfig) error {
		if l == nil {
			return errors.New("estring: WithLogger requires a non-nil logger")
		}
		c.logger = l
		return nil
	}
}

// WithMetrics registers the Prometheus collectors described in
// SPEC_FULL.md §A.3 against reg. reg must not be nil.
func WithMetrics(reg *prometheus.Registry) Option {
	return func(c *observConfig) error {
		if reg == nil {
			return errors.New("estring: WithMetrics requires a non-nil registry")
		}
		c.metrics = newPromMetrics(reg)
		return nil
	}
}

// Configure applies opts to the package's observability defaults. Call it
// once, early (typically from main), before the bulk of interning traffic
// starts: only Shards constructed after this call observe the new logger or
// metrics sink. Configure itself is not on any hot path and is safe to call
// concurrently with Intern/InternIfPresent, but is not itself safe to call
// concurrently with another Configure call expecting a particular outcome —
// like the teacher's cache.New, it is meant for startup, not steady state.
func Configure(opts ...Option) error {
	configMu.Lock()
	defer configMu.Unlock()

	cfg := &observConfig{logger: curLogger, metrics: curMetrics}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return err
		}
	}
	curLogger = cfg.logger
	curMetrics = cfg.metrics
	return nil
}

func currentLogger() *zap.Logger {
	configMu.RLock()
	defer configMu.RUnlock()
	return curLogger
}

func currentMetrics() metricsSink {
	configMu.RLock()
	defer configMu.RUnlock()
	return curMetrics
}
