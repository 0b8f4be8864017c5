package state

import "sync"

// Store is the single-writer container around the snapshot. Mutation
// services dispatch transitions after their remote write succeeds; readers
// take whole snapshots and subscribers are invoked with each new one.
type Store struct {
	mu   sync.RWMutex
	snap Snapshot
	subs []func(Snapshot)
}

func NewStore(initial Snapshot) *Store {
	return &Store{snap: initial}
}

// Snapshot returns the current state. The returned value must be treated as
// read-only; it will never be modified by a later dispatch.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// Dispatch applies the transition and publishes the new snapshot to
// subscribers. Transitions are serialized; each subscriber sees every
// snapshot in dispatch order.
func (s *Store) Dispatch(tr Transition) Snapshot {
	s.mu.Lock()
	s.snap = Apply(s.snap, tr)
	next := s.snap
	subs := s.subs
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
	return next
}

// Reset replaces the whole snapshot, used when the initial load (or a
// reload) produces a fresh one.
func (s *Store) Reset(snap Snapshot) {
	s.mu.Lock()
	s.snap = snap
	next := s.snap
	subs := s.subs
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
}

// Subscribe registers a callback invoked after every dispatch.
func (s *Store) Subscribe(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}
