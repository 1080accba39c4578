package repository

import (
	"context"
	"sync"
	"time"

	"github.com/hooplytics/hooplytics/internal/domain/model"
	"github.com/hooplytics/hooplytics/pkg/metrics"
)

// DefaultTTL keeps entries for a week; team per-game averages move slowly.
const DefaultTTL = 7 * 24 * time.Hour

type seasonEntry struct {
	rows     []model.TeamSeasonStats
	storedAt time.Time
}

type datasetEntry struct {
	records  []model.SeasonRecord
	storedAt time.Time
}

// MemoryStore is the in-process Store implementation. Reads check expiry
// lazily; an expired entry behaves exactly like a miss.
type MemoryStore struct {
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	seasons map[string]seasonEntry
	dataset *datasetEntry
}

// NewMemoryStore constructs an empty MemoryStore with default TTL.
func NewMemoryStore(opts ...Option) *MemoryStore {
	s := &MemoryStore{
		ttl:     DefaultTTL,
		now:     time.Now,
		seasons: make(map[string]seasonEntry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Season returns the cached raw rows for one season, if fresh.
func (s *MemoryStore) Season(_ context.Context, season string) ([]model.TeamSeasonStats, bool) {
	s.mu.RLock()
	entry, ok := s.seasons[season]
	s.mu.RUnlock()

	if !ok || s.expired(entry.storedAt) {
		metrics.RecordCacheMiss(metrics.CacheTierSeason)
		return nil, false
	}
	metrics.RecordCacheHit(metrics.CacheTierSeason)
	rows := make([]model.TeamSeasonStats, len(entry.rows))
	copy(rows, entry.rows)
	return rows, true
}

// SetSeason caches the raw rows for one season.
func (s *MemoryStore) SetSeason(_ context.Context, season string, rows []model.TeamSeasonStats) {
	cp := make([]model.TeamSeasonStats, len(rows))
	copy(cp, rows)

	s.mu.Lock()
	s.seasons[season] = seasonEntry{rows: cp, storedAt: s.now()}
	s.mu.Unlock()
}

// Dataset returns the cached derived dataset, if fresh.
func (s *MemoryStore) Dataset(_ context.Context) ([]model.SeasonRecord, bool) {
	s.mu.RLock()
	entry := s.dataset
	s.mu.RUnlock()

	if entry == nil || s.expired(entry.storedAt) {
		metrics.RecordCacheMiss(metrics.CacheTierDataset)
		return nil, false
	}
	metrics.RecordCacheHit(metrics.CacheTierDataset)
	records := make([]model.SeasonRecord, len(entry.records))
	copy(records, entry.records)
	return records, true
}

// SetDataset caches the derived dataset.
func (s *MemoryStore) SetDataset(_ context.Context, records []model.SeasonRecord) {
	cp := make([]model.SeasonRecord, len(records))
	copy(cp, records)

	s.mu.Lock()
	s.dataset = &datasetEntry{records: cp, storedAt: s.now()}
	s.mu.Unlock()
}

// Clear wipes both tiers.
func (s *MemoryStore) Clear(_ context.Context) {
	s.mu.Lock()
	s.seasons = make(map[string]seasonEntry)
	s.dataset = nil
	s.mu.Unlock()
	metrics.RecordCacheClear()
}

// Len reports the number of live entries across both tiers.
func (s *MemoryStore) Len(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := 0
	for _, entry := range s.seasons {
		if !s.expired(entry.storedAt) {
			n++
		}
	}
	if s.dataset != nil && !s.expired(s.dataset.storedAt) {
		n++
	}
	return n
}

func (s *MemoryStore) expired(storedAt time.Time) bool {
	return s.now().Sub(storedAt) > s.ttl
}
