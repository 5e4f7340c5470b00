package repository

import (
	"context"
	"sync"
)

// MemStore is the in-memory Store. Reads hand out copies so API
// consumers cannot mutate the stored snapshot in place; the data is
// read-only derived analytics, not a system of record.
type MemStore struct {
	mu       sync.RWMutex
	current  Snapshot
	hasValue bool
}

// NewMemStore creates an empty in-memory snapshot store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Set replaces the current snapshot. Last write wins: a slow in-flight
// refresh that lands after a newer one simply overwrites it, which is
// acceptable for display-only analytics.
func (s *MemStore) Set(_ context.Context, snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = snap
	s.hasValue = true
}

// Get returns a copy of the current snapshot.
func (s *MemStore) Get(_ context.Context) (Snapshot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.hasValue {
		return Snapshot{}, false
	}
	return copySnapshot(s.current), true
}

func copySnapshot(in Snapshot) Snapshot {
	out := in
	out.Crew = append(out.Crew[:0:0], in.Crew...)
	out.Leaderboard = append(out.Leaderboard[:0:0], in.Leaderboard...)
	out.Awards = append(out.Awards[:0:0], in.Awards...)
	for i := range out.Awards {
		out.Awards[i].Awards = append(out.Awards[i].Awards[:0:0], in.Awards[i].Awards...)
	}
	out.Compliance.Squads = append(out.Compliance.Squads[:0:0], in.Compliance.Squads...)
	return out
}
