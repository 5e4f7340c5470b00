package app

import (
	"time"

	"github.com/seaborne/quarterdeck/internal/adapters/repository"
	"github.com/seaborne/quarterdeck/internal/domain/enrich"
	"github.com/seaborne/quarterdeck/internal/domain/roster"
	"github.com/seaborne/quarterdeck/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithFetcher sets the sheet fetcher. Required before Start.
func WithFetcher(f TableFetcher) Option {
	return func(s *Service) {
		if f != nil {
			s.fetcher = f
		}
	}
}

// WithStore replaces the in-memory snapshot store.
func WithStore(st repository.Store) Option {
	return func(s *Service) {
		if st != nil {
			s.store = st
		}
	}
}

// WithNormalizer replaces the roster normalizer.
func WithNormalizer(n *roster.Normalizer) Option {
	return func(s *Service) {
		if n != nil {
			s.normalizer = n
		}
	}
}

// WithEnricher replaces the leaderboard enricher.
func WithEnricher(e *enrich.Enricher) Option {
	return func(s *Service) {
		if e != nil {
			s.enricher = e
		}
	}
}

// WithRanges sets the three tab ranges in A1 notation. Voyage and award
// ranges may be empty to skip those overlays.
func WithRanges(rosterRange, voyageRange, awardRange string) Option {
	return func(s *Service) {
		if rosterRange != "" {
			s.rosterRange = rosterRange
		}
		s.voyageRange = voyageRange
		s.awardRange = awardRange
	}
}

// WithKnownAwards sets the award columns read from the role/coin tab.
func WithKnownAwards(known []string) Option {
	return func(s *Service) {
		if len(known) > 0 {
			s.knownAwards = known
		}
	}
}

// WithRefreshInterval sets the timer-driven refresh cadence.
func WithRefreshInterval(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.refreshInterval = d
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
