// Package service provides the core business service that implements the
// dependencies required by the HTTP API: the cached fetch-aggregate-derive
// pipeline and the view projections over it.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hooplytics/hooplytics/internal/adapters/aggregate"
	"github.com/hooplytics/hooplytics/internal/adapters/repository"
	"github.com/hooplytics/hooplytics/internal/domain/derive"
	"github.com/hooplytics/hooplytics/internal/domain/model"
	"github.com/hooplytics/hooplytics/internal/domain/seasons"
	"github.com/hooplytics/hooplytics/internal/domain/view"
	"github.com/hooplytics/hooplytics/pkg/logger"
	"github.com/hooplytics/hooplytics/pkg/metrics"
)

// Service implements the API dependencies for the analytics dashboard.
type Service struct {
	mu sync.Mutex

	// Core collaborators
	store      repository.Store
	fetcher    aggregate.Fetcher
	aggregator *aggregate.Aggregator

	// Configuration
	seasonList []string
	champions  map[string]string
	pace       time.Duration
	ttl        time.Duration

	// State
	started bool

	// Logging
	log logger.Logger
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		seasonList: seasons.All(),
		champions:  seasons.Champions(),
		pace:       aggregate.DefaultPacing,
		ttl:        repository.DefaultTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start wires the pipeline components. Safe to call once; subsequent calls
// are no-ops.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}
	if s.log == nil {
		s.log = logger.Get()
	}
	if s.fetcher == nil {
		return ErrNoFetcher
	}
	if s.store == nil {
		s.store = repository.NewMemoryStore(repository.WithTTL(s.ttl))
	}
	s.aggregator = aggregate.New(s.fetcher,
		aggregate.WithSeasonCache(s.store),
		aggregate.WithPacing(s.pace),
		aggregate.WithSeasonList(s.seasonList),
		aggregate.WithLogger(s.log),
	)

	s.started = true
	s.log.Info(ctx, "dashboard service started",
		logger.Int("seasons", len(s.seasonList)),
		logger.Duration("cacheTTL", s.ttl),
		logger.Duration("pacing", s.pace),
	)
	return nil
}

// Stop releases the service. The cache lives and dies with the process, so
// there is nothing to flush.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}
	s.started = false
	s.log.Info(context.Background(), "dashboard service stopped")
}

// Dataset returns the full derived dataset, rebuilding it through the
// pipeline when the cache is empty or expired. Rebuilds are serialized so
// concurrent consumers never trigger duplicate fetch rounds.
func (s *Service) Dataset(ctx context.Context) ([]model.SeasonRecord, error) {
	if !s.isStarted() {
		return nil, ErrNotStarted
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if records, ok := s.store.Dataset(ctx); ok {
		return records, nil
	}

	start := time.Now()
	rows, err := s.aggregator.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("aggregate seasons: %w", err)
	}
	records, err := derive.Dataset(rows, s.champions)
	if err != nil {
		return nil, fmt.Errorf("derive dataset: %w", err)
	}

	s.store.SetDataset(ctx, records)
	metrics.RecordDatasetRebuild(float64(time.Since(start).Milliseconds()), len(records))
	metrics.UpdateCacheEntries(s.store.Len(ctx))
	s.log.Info(ctx, "dataset rebuilt",
		logger.Int("rows", len(records)),
		logger.Duration("took", time.Since(start)),
	)
	return records, nil
}

// Records returns the dataset narrowed down by the filter. An empty season
// defaults to the most recent one.
func (s *Service) Records(ctx context.Context, f model.Filter) ([]model.SeasonRecord, error) {
	f, err := s.normalize(f)
	if err != nil {
		return nil, err
	}
	records, err := s.Dataset(ctx)
	if err != nil {
		return nil, err
	}
	return view.Apply(records, f), nil
}

// Summary computes the metric cards for a filtered view.
func (s *Service) Summary(ctx context.Context, f model.Filter) (model.Summary, error) {
	f, err := s.normalize(f)
	if err != nil {
		return model.Summary{}, err
	}
	records, err := s.Dataset(ctx)
	if err != nil {
		return model.Summary{}, err
	}
	return view.Summary(f.Season, view.Apply(records, f)), nil
}

// TopThrees ranks the filtered view by threes per game, descending.
func (s *Service) TopThrees(ctx context.Context, f model.Filter, n int) ([]model.SeasonRecord, error) {
	filtered, err := s.Records(ctx, f)
	if err != nil {
		return nil, err
	}
	return view.TopByThrees(filtered, n), nil
}

// Evolution returns the season-over-season league-vs-champion trend over
// the full, unfiltered dataset.
func (s *Service) Evolution(ctx context.Context) ([]model.EvolutionPoint, error) {
	records, err := s.Dataset(ctx)
	if err != nil {
		return nil, err
	}
	return view.Evolution(records, s.seasonList), nil
}

// Teams lists the team names present in a season.
func (s *Service) Teams(ctx context.Context, season string) ([]string, error) {
	if season == "" {
		season = s.latest()
	}
	if !s.validSeason(season) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSeason, season)
	}
	records, err := s.Dataset(ctx)
	if err != nil {
		return nil, err
	}
	return view.Teams(records, season), nil
}

// SeasonList returns the tracked seasons in chronological order.
func (s *Service) SeasonList() []string {
	out := make([]string, len(s.seasonList))
	copy(out, s.seasonList)
	return out
}

// Champions returns the season-to-champion lookup.
func (s *Service) Champions() map[string]string {
	out := make(map[string]string, len(s.champions))
	for k, v := range s.champions {
		out[k] = v
	}
	return out
}

// ClearCache wipes both cache tiers, forcing a full refetch on next access.
func (s *Service) ClearCache(ctx context.Context) {
	if !s.isStarted() {
		return
	}
	s.store.Clear(ctx)
	metrics.UpdateCacheEntries(0)
	s.log.Info(ctx, "cache cleared by user request")
}

// Stats is a point-in-time snapshot of the service for monitoring: the
// lifecycle flag, the tracked season count, the configured cache TTL and
// fetch pacing, and the live cache state.
type Stats struct {
	Started       bool   `json:"started"`
	Seasons       int    `json:"seasons"`
	CacheTTL      string `json:"cache_ttl"`
	Pacing        string `json:"pacing"`
	CacheEntries  int    `json:"cache_entries"`
	DatasetCached bool   `json:"dataset_cached"`
}

// GetStats returns service statistics for monitoring. Reading the snapshot
// also refreshes the cache-entries gauge.
func (s *Service) GetStats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := Stats{
		Started:  s.started,
		Seasons:  len(s.seasonList),
		CacheTTL: s.ttl.String(),
		Pacing:   s.pace.String(),
	}
	if s.started {
		ctx := context.Background()
		stats.CacheEntries = s.store.Len(ctx)
		_, stats.DatasetCached = s.store.Dataset(ctx)
		metrics.UpdateCacheEntries(stats.CacheEntries)
	}
	return stats
}

func (s *Service) isStarted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

func (s *Service) latest() string {
	if len(s.seasonList) == 0 {
		return seasons.Latest()
	}
	return s.seasonList[len(s.seasonList)-1]
}

func (s *Service) validSeason(season string) bool {
	for _, candidate := range s.seasonList {
		if candidate == season {
			return true
		}
	}
	return false
}

func (s *Service) normalize(f model.Filter) (model.Filter, error) {
	if f.Season == "" {
		f.Season = s.latest()
	}
	if !s.validSeason(f.Season) {
		return f, fmt.Errorf("%w: %q", ErrUnknownSeason, f.Season)
	}
	if f.MinThreePct < 0 || f.MinThreePct > 100 {
		return f, fmt.Errorf("%w: min FG3_PCT %v out of range", ErrBadFilter, f.MinThreePct)
	}
	return f, nil
}
