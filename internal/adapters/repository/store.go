// Package repository holds the latest derived roster snapshot.
package repository

import (
	"context"
	"time"

	"github.com/seaborne/quarterdeck/internal/domain/aggregate"
	"github.com/seaborne/quarterdeck/internal/domain/awards"
	"github.com/seaborne/quarterdeck/internal/domain/leaderboard"
	"github.com/seaborne/quarterdeck/internal/domain/roster"
)

// Snapshot is one refresh's worth of derived records. Snapshots are
// immutable once stored; a new refresh replaces the whole thing.
type Snapshot struct {
	ID        string
	FetchedAt time.Time

	Crew        []roster.CrewMember
	Leaderboard []leaderboard.Entry
	Awards      []awards.Grant
	Compliance  aggregate.Summary
}

// Store provides last-write-wins access to the current snapshot. The
// core stays storage-free: tables in, records out; only the service
// shell talks to the store.
type Store interface {
	// Set replaces the current snapshot.
	Set(ctx context.Context, s Snapshot)

	// Get returns a copy of the current snapshot. The second return is
	// false before the first successful refresh.
	Get(ctx context.Context) (Snapshot, bool)
}
