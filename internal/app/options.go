package service

import (
	"time"

	"github.com/hooplytics/hooplytics/internal/adapters/aggregate"
	"github.com/hooplytics/hooplytics/internal/adapters/repository"
	"github.com/hooplytics/hooplytics/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithFetcher wires the stats provider client. Required.
func WithFetcher(f aggregate.Fetcher) Option {
	return func(s *Service) {
		s.fetcher = f
	}
}

// WithStore replaces the default in-memory cache store.
func WithStore(store repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// WithPacing sets the delay between provider calls during aggregation.
func WithPacing(d time.Duration) Option {
	return func(s *Service) {
		if d >= 0 {
			s.pace = d
		}
	}
}

// WithCacheTTL sets the cache expiry used by the default store.
func WithCacheTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithSeasonList overrides the tracked seasons. Tests use this to shrink
// the fixed set.
func WithSeasonList(list []string) Option {
	return func(s *Service) {
		if len(list) > 0 {
			s.seasonList = list
		}
	}
}

// WithChampions overrides the season-to-champion lookup.
func WithChampions(champions map[string]string) Option {
	return func(s *Service) {
		if champions != nil {
			s.champions = champions
		}
	}
}
