package repository

import (
	"context"
	"sync/atomic"
	"time"

	"food_monitor/internal/logger"
	"food_monitor/internal/models"
)

// durableTimeout bounds one round trip to the durable medium.
const durableTimeout = 2 * time.Second

// cachedSignal is an immutable cache entry. synced reports whether the
// durable medium is known to hold the same state.
type cachedSignal struct {
	state  models.SignalState
	synced bool
}

// CachedSignalStore keeps the latest signal in process memory and mirrors it
// to an optional durable medium. The whole record is swapped atomically, so a
// reader never observes a half-written state.
//
// While the last write has not reached the durable medium, the cache is
// authoritative and reads do not consult the medium.
type CachedSignalStore struct {
	durable SignalRepo // nil means memory only
	cache   atomic.Pointer[cachedSignal]
	log     *logger.Logger
}

// NewMemorySignalStore returns a store with no durable medium.
func NewMemorySignalStore(log *logger.Logger) *CachedSignalStore {
	return NewSignalStore(nil, log)
}

// NewSignalStore returns a store backed by durable, falling back to the
// in-process cache whenever the medium errors.
func NewSignalStore(durable SignalRepo, log *logger.Logger) *CachedSignalStore {
	s := &CachedSignalStore{durable: durable, log: log}
	s.cache.Store(&cachedSignal{state: models.UnknownSignal(time.Now()), synced: true})
	return s
}

// Read returns the latest state. It never fails.
func (s *CachedSignalStore) Read(ctx context.Context) models.SignalState {
	cur := s.cache.Load()
	if s.durable == nil || !cur.synced {
		return cur.state.Clone()
	}

	dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), durableTimeout)
	defer cancel()

	st, err := s.durable.Load(dctx)
	if err != nil {
		if s.log != nil {
			s.log.Warnw("signal_durable_read_failed", "err", err)
		}
		return cur.state.Clone()
	}
	if st == nil {
		return cur.state.Clone()
	}

	// Only adopt the durable value if no write landed meanwhile.
	fresh := &cachedSignal{state: st.Clone(), synced: true}
	if s.cache.CompareAndSwap(cur, fresh) {
		return st.Clone()
	}
	return s.cache.Load().state.Clone()
}

// Write replaces the cached state and, best effort, the durable copy.
func (s *CachedSignalStore) Write(ctx context.Context, st models.SignalState) {
	entry := &cachedSignal{state: st.Clone()}
	s.cache.Store(entry)
	if s.durable == nil {
		return
	}

	dctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), durableTimeout)
	defer cancel()

	if err := s.durable.Save(dctx, st); err != nil {
		if s.log != nil {
			s.log.Errorw("signal_durable_write_failed", "err", err, "status", st.Status)
		}
		return
	}
	s.cache.CompareAndSwap(entry, &cachedSignal{state: entry.state, synced: true})
}
