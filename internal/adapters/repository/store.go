package repository

import (
	"sync/atomic"

	"github.com/mlbdw/livetracker/pkg/logger"
)

// Store publishes and serves the latest snapshot.
type Store interface {
	// Publish replaces the current snapshot. The snapshot must not be
	// mutated after publishing.
	Publish(snap *Snapshot)

	// Latest returns the current snapshot, or false before the first
	// publish.
	Latest() (*Snapshot, bool)
}

// MemoryStore is an in-memory Store backed by an atomic pointer swap.
type MemoryStore struct {
	current atomic.Pointer[Snapshot]
	logger  logger.Logger
}

// Option applies a configuration option to the MemoryStore.
type Option func(*MemoryStore)

// WithLogger sets a custom logger for the store.
func WithLogger(l logger.Logger) Option {
	return func(s *MemoryStore) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewMemoryStore creates an empty store with configuration options.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		logger: logger.Get().Named("snapshot-store"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Publish replaces the current snapshot atomically.
func (s *MemoryStore) Publish(snap *Snapshot) {
	if snap == nil {
		return
	}
	s.current.Store(snap)
}

// Latest returns the current snapshot.
func (s *MemoryStore) Latest() (*Snapshot, bool) {
	snap := s.current.Load()
	if snap == nil {
		return nil, false
	}
	return snap, true
}
