// Package app provides the core service that implements the dependencies
// required by the HTTP API: it drives the fetch → normalize → enrich →
// aggregate pipeline and stores the resulting snapshots.
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/seaborne/quarterdeck/internal/adapters/repository"
	"github.com/seaborne/quarterdeck/internal/domain/aggregate"
	"github.com/seaborne/quarterdeck/internal/domain/awards"
	"github.com/seaborne/quarterdeck/internal/domain/enrich"
	"github.com/seaborne/quarterdeck/internal/domain/leaderboard"
	"github.com/seaborne/quarterdeck/internal/domain/roster"
	"github.com/seaborne/quarterdeck/internal/domain/sheet"
	"github.com/seaborne/quarterdeck/pkg/logger"
	"github.com/seaborne/quarterdeck/pkg/metrics"
)

const defaultRefreshInterval = 5 * time.Minute

// TableFetcher retrieves one spreadsheet range as a raw table.
type TableFetcher interface {
	FetchTable(ctx context.Context, readRange string) (sheet.RawTable, error)
}

// Service implements the API dependencies for the roster dashboard.
//
// Each refresh is an independent pure computation over freshly fetched
// tables; nothing carries over between refreshes except the stored
// snapshot, which the last refresh to finish overwrites.
type Service struct {
	mu sync.RWMutex

	fetcher    TableFetcher
	store      repository.Store
	normalizer *roster.Normalizer
	enricher   *enrich.Enricher

	rosterRange string
	voyageRange string
	awardRange  string
	knownAwards []string

	refreshInterval time.Duration

	started bool
	stopCh  chan struct{}

	// Refresh bookkeeping for /stats.
	refreshCount    int
	refreshFailures int
	lastRefreshAt   time.Time
	lastDuration    time.Duration
	lastError       string
	rowsSkipped     int

	logger logger.Logger
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		store:           repository.NewMemStore(),
		normalizer:      roster.NewNormalizer(),
		enricher:        enrich.New(),
		rosterRange:     "Roster!A1:Z",
		voyageRange:     "Voyages!A1:Z",
		knownAwards:     awards.DefaultKnown(),
		refreshInterval: defaultRefreshInterval,
		stopCh:          make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start runs the first refresh and begins the timer-driven refresh loop.
// A failed first refresh does not abort startup: the sheet may be
// briefly unreachable and the loop retries on the next tick.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return nil
	}
	if s.fetcher == nil {
		s.mu.Unlock()
		return ErrNoFetcher
	}
	if s.logger == nil {
		s.logger = logger.Get()
	}
	s.started = true
	s.mu.Unlock()

	s.logger.Info(ctx, "starting roster service",
		logger.String("roster_range", s.rosterRange),
		logger.String("voyage_range", s.voyageRange),
		logger.Duration("refresh_interval", s.refreshInterval),
	)

	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn(ctx, "initial refresh failed; keeping empty snapshot", logger.Error(err))
	}

	go s.refreshLoop(ctx)
	return nil
}

// Stop ends the refresh loop. An in-flight refresh is not cancelled; its
// result lands in the store and simply goes unread.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.started {
		return
	}
	close(s.stopCh)
	s.started = false
	s.logger.Info(context.Background(), "roster service stopped")
}

func (s *Service) refreshLoop(ctx context.Context) {
	ticker := time.NewTicker(s.refreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
			if err := s.Refresh(ctx); err != nil {
				s.logger.Warn(ctx, "scheduled refresh failed", logger.Error(err))
			}
		}
	}
}

// Refresh fetches the sheet tabs, rebuilds every derived record, and
// stores a new snapshot. On roster-fetch failure no snapshot is produced
// and the previous one stays visible; the core is never handed a table
// from a failed fetch.
func (s *Service) Refresh(ctx context.Context) (err error) {
	start := time.Now()
	defer func() {
		d := time.Since(start)
		metrics.RecordRefresh(d, err)
		s.recordRefresh(d, err)
	}()

	rosterTable, err := s.fetcher.FetchTable(ctx, s.rosterRange)
	if err != nil {
		return fmt.Errorf("roster fetch: %w", err)
	}

	members := s.normalizer.Normalize(rosterTable)
	skipped := len(rosterTable.Rows) - len(members)
	metrics.RecordRowsParsed("roster", len(members))
	metrics.RecordRowsSkipped("roster", skipped)

	names := make([]string, len(members))
	for i, m := range members {
		names[i] = m.Name
	}

	// Secondary tabs are best-effort: a failed voyage or award fetch
	// withholds that overlay but never the roster itself.
	var entries []leaderboard.Entry
	if s.voyageRange != "" {
		if voyageTable, verr := s.fetcher.FetchTable(ctx, s.voyageRange); verr != nil {
			s.logger.Warn(ctx, "voyage fetch failed; skipping leaderboard overlay", logger.Error(verr))
		} else {
			entries = leaderboard.Normalize(voyageTable, names)
			metrics.RecordRowsParsed("voyages", len(entries))
			metrics.RecordRowsSkipped("voyages", len(voyageTable.Rows)-len(entries))
		}
	}

	var grants []awards.Grant
	if s.awardRange != "" {
		if awardTable, aerr := s.fetcher.FetchTable(ctx, s.awardRange); aerr != nil {
			s.logger.Warn(ctx, "award fetch failed; skipping awards", logger.Error(aerr))
		} else {
			grants = awards.Normalize(awardTable, names, s.knownAwards)
		}
	}

	members = s.enricher.ApplyAll(members, entries)
	summary := aggregate.Summarize(members)

	snap := repository.Snapshot{
		ID:          uuid.NewString(),
		FetchedAt:   time.Now(),
		Crew:        members,
		Leaderboard: entries,
		Awards:      grants,
		Compliance:  summary,
	}
	s.store.Set(ctx, snap)
	metrics.UpdateSnapshot(len(members), len(entries), summary.Percent, summary.OnLOA, snap.FetchedAt)

	s.mu.Lock()
	s.rowsSkipped = skipped
	s.mu.Unlock()

	s.logger.Info(ctx, "snapshot refreshed",
		logger.String("snapshot_id", snap.ID),
		logger.Int("crew", len(members)),
		logger.Int("skipped_rows", skipped),
		logger.Int("leaderboard_entries", len(entries)),
		logger.Int("compliance_percent", summary.Percent),
	)
	return nil
}

func (s *Service) recordRefresh(d time.Duration, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshCount++
	s.lastRefreshAt = time.Now()
	s.lastDuration = d
	if err != nil {
		s.refreshFailures++
		s.lastError = err.Error()
	} else {
		s.lastError = ""
	}
}

// Crew returns the crew records of the current snapshot.
func (s *Service) Crew(ctx context.Context) ([]roster.CrewMember, bool) {
	snap, ok := s.store.Get(ctx)
	if !ok {
		return nil, false
	}
	return snap.Crew, true
}

// Member returns every record for the named crew member. Duplicate sheet
// rows surface as multiple records on purpose.
func (s *Service) Member(ctx context.Context, name string) ([]roster.CrewMember, error) {
	snap, ok := s.store.Get(ctx)
	if !ok {
		return nil, ErrNoSnapshot
	}
	var out []roster.CrewMember
	for _, m := range snap.Crew {
		if m.Name == name {
			out = append(out, m)
		}
	}
	if len(out) == 0 {
		return nil, ErrMemberNotFound
	}
	return out, nil
}

// Leaderboard returns both rankings, capped at n entries each.
func (s *Service) Leaderboard(ctx context.Context, n int) (aggregate.Rankings, bool) {
	snap, ok := s.store.Get(ctx)
	if !ok {
		return aggregate.Rankings{}, false
	}
	return aggregate.Rank(snap.Leaderboard, n), true
}

// Squads returns the per-squad compliance breakdown.
func (s *Service) Squads(ctx context.Context) ([]aggregate.SquadCount, bool) {
	snap, ok := s.store.Get(ctx)
	if !ok {
		return nil, false
	}
	return snap.Compliance.Squads, true
}

// Compliance returns the compliance panel summary.
func (s *Service) Compliance(ctx context.Context) (aggregate.Summary, bool) {
	snap, ok := s.store.Get(ctx)
	if !ok {
		return aggregate.Summary{}, false
	}
	return snap.Compliance, true
}

// Awards returns the award grants of the current snapshot.
func (s *Service) Awards(ctx context.Context) ([]awards.Grant, bool) {
	snap, ok := s.store.Get(ctx)
	if !ok {
		return nil, false
	}
	return snap.Awards, true
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]any{
		"started":          s.started,
		"refresh_count":    s.refreshCount,
		"refresh_failures": s.refreshFailures,
		"rows_skipped":     s.rowsSkipped,
	}
	if !s.lastRefreshAt.IsZero() {
		stats["last_refresh_at"] = s.lastRefreshAt
		stats["last_refresh_ms"] = s.lastDuration.Milliseconds()
	}
	if s.lastError != "" {
		stats["last_error"] = s.lastError
	}
	if snap, ok := s.store.Get(context.Background()); ok {
		stats["snapshot_id"] = snap.ID
		stats["snapshot_at"] = snap.FetchedAt
		stats["crew_total"] = len(snap.Crew)
	}
	return stats
}
