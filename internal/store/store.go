// Package store implements durable key/value persistence with graceful
// degradation to process-local memory when the durable medium is unavailable.
package store

import (
	"context"
	"log"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Medium is the durable key/value backend behind a Store. Implementations
// may fail; the Store absorbs those failures.
type Medium interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

const probeKey = "__probe__"

var (
	degradedMode = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "healthlog_store_degraded",
		Help: "1 when the durable medium failed its startup probe and the store runs memory-only.",
	})
	writeFaults = promauto.NewCounter(prometheus.CounterOpts{
		Name: "healthlog_store_write_faults_total",
		Help: "Writes that failed against the durable medium and were kept in memory only.",
	})
	readFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "healthlog_store_read_fallbacks_total",
		Help: "Reads that failed against the durable medium and were served from the memory mirror.",
	})
)

// Store routes reads and writes to a durable medium, mirroring every write in
// process memory. A medium that fails its startup probe marks the store
// permanently degraded: all traffic targets the mirror for the rest of the
// process lifetime. Medium faults after a successful probe are absorbed per
// call, so callers never block on a storage failure; durability for the
// affected write is lost, nothing else.
type Store struct {
	medium   Medium
	mirror   map[string][]byte
	degraded bool
	log      *log.Logger
}

// New probes the medium with a throwaway write+delete and returns a Store,
// degraded if the probe failed. The degradation is logged once, here.
func New(ctx context.Context, medium Medium, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	s := &Store{medium: medium, mirror: make(map[string][]byte), log: logger}

	if err := medium.Set(ctx, probeKey, []byte("probe")); err != nil {
		s.markDegraded(err)
		return s
	}
	if err := medium.Delete(ctx, probeKey); err != nil {
		s.markDegraded(err)
		return s
	}
	return s
}

func (s *Store) markDegraded(err error) {
	s.degraded = true
	degradedMode.Set(1)
	s.log.Printf("store: durable medium unavailable, falling back to memory: %v", err)
}

// Degraded reports whether the startup probe failed.
func (s *Store) Degraded() bool { return s.degraded }

// Read returns the value for key, or absent. The durable medium is preferred
// when not degraded; a medium read fault or a key the medium does not hold
// falls back to the mirror value, if any. The latter keeps a write whose
// durable half failed visible for the rest of the session.
func (s *Store) Read(ctx context.Context, key string) ([]byte, bool) {
	if !s.degraded {
		value, ok, err := s.medium.Get(ctx, key)
		if err == nil && ok {
			return value, true
		}
		if err != nil {
			readFallbacks.Inc()
			s.log.Printf("store: read %q from medium failed, using memory mirror: %v", key, err)
		}
	}
	value, ok := s.mirror[key]
	return value, ok
}

// Write stores value under key. The memory mirror is always updated, so the
// in-process session stays consistent even when the durable write fails.
func (s *Store) Write(ctx context.Context, key string, value []byte) {
	s.mirror[key] = value
	if s.degraded {
		return
	}
	if err := s.medium.Set(ctx, key, value); err != nil {
		writeFaults.Inc()
		s.log.Printf("store: write %q to medium failed, durability lost for this write: %v", key, err)
	}
}
