// Package repository provides the time-bounded cache behind the dataset
// pipeline: one tier for per-season raw fetches, one for the fully derived
// dataset. Entries expire after a TTL and can be cleared manually; nothing
// is ever written to disk.
package repository

import (
	"context"

	"github.com/hooplytics/hooplytics/internal/domain/model"
)

// Store is the cache contract the pipeline depends on. Implementations are
// keyed purely by their inputs (season, or nothing for the dataset tier) so
// they behave like a memoization table with expiry.
type Store interface {
	// Season returns the cached raw rows for one season, if fresh.
	Season(ctx context.Context, season string) ([]model.TeamSeasonStats, bool)
	// SetSeason caches the raw rows for one season.
	SetSeason(ctx context.Context, season string, rows []model.TeamSeasonStats)

	// Dataset returns the cached derived dataset, if fresh.
	Dataset(ctx context.Context) ([]model.SeasonRecord, bool)
	// SetDataset caches the derived dataset.
	SetDataset(ctx context.Context, records []model.SeasonRecord)

	// Clear wipes both tiers, forcing a full refetch on next access.
	Clear(ctx context.Context)

	// Len reports the number of live entries across both tiers, for
	// monitoring.
	Len(ctx context.Context) int
}
