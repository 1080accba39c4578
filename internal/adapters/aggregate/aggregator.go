// Package aggregate produces the full multi-season table: one fetch per
// season in the fixed order, paced to stay friendly with provider rate
// limits, concatenated preserving season-then-provider row order.
package aggregate

import (
	"context"
	"fmt"
	"time"

	"github.com/hooplytics/hooplytics/internal/domain/model"
	"github.com/hooplytics/hooplytics/internal/domain/seasons"
	"github.com/hooplytics/hooplytics/pkg/logger"
)

// DefaultPacing is the courtesy delay between consecutive provider calls.
// It is a throttle, not a correctness requirement.
const DefaultPacing = 350 * time.Millisecond

// Fetcher pulls one season of raw per-team rows from the provider.
type Fetcher interface {
	TeamStats(ctx context.Context, season string) ([]model.TeamSeasonStats, error)
}

// SeasonCache is the per-season tier of the cache. A hit skips both the
// network call and the pacing delay, so a partial failure never refetches
// seasons that already completed.
type SeasonCache interface {
	Season(ctx context.Context, season string) ([]model.TeamSeasonStats, bool)
	SetSeason(ctx context.Context, season string, rows []model.TeamSeasonStats)
}

// Aggregator loads and concatenates all tracked seasons.
type Aggregator struct {
	fetcher    Fetcher
	cache      SeasonCache
	pace       time.Duration
	seasonList []string
	log        logger.Logger
}

// New constructs an Aggregator over the fixed season list.
func New(fetcher Fetcher, opts ...Option) *Aggregator {
	a := &Aggregator{
		fetcher:    fetcher,
		pace:       DefaultPacing,
		seasonList: seasons.All(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Load fetches every season in order and returns the concatenated rows.
// The first provider failure aborts the load; seasons fetched before the
// failure stay cached for the next attempt.
func (a *Aggregator) Load(ctx context.Context) ([]model.TeamSeasonStats, error) {
	if a.fetcher == nil {
		return nil, ErrNoFetcher
	}
	if a.log == nil {
		a.log = logger.Get()
	}

	var all []model.TeamSeasonStats
	fetched := false
	for _, season := range a.seasonList {
		if a.cache != nil {
			if rows, ok := a.cache.Season(ctx, season); ok {
				all = append(all, rows...)
				continue
			}
		}

		// Pace only between real provider calls; cache hits are free.
		if fetched {
			if err := a.sleep(ctx); err != nil {
				return nil, err
			}
		}

		rows, err := a.fetcher.TeamStats(ctx, season)
		if err != nil {
			return nil, fmt.Errorf("season %s: %w", season, err)
		}
		fetched = true
		a.log.Debug(ctx, "fetched season",
			logger.String("season", season),
			logger.Int("rows", len(rows)),
		)

		if a.cache != nil {
			a.cache.SetSeason(ctx, season, rows)
		}
		all = append(all, rows...)
	}
	return all, nil
}

func (a *Aggregator) sleep(ctx context.Context) error {
	if a.pace <= 0 {
		return nil
	}
	timer := time.NewTimer(a.pace)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return fmt.Errorf("pacing interrupted: %w", ctx.Err())
	case <-timer.C:
		return nil
	}
}
