package aggregate

import (
	"time"

	"github.com/hooplytics/hooplytics/pkg/logger"
)

// Option applies a configuration option to the Aggregator.
type Option func(*Aggregator)

// WithPacing sets the delay between consecutive provider calls. Zero
// disables pacing (useful in tests).
func WithPacing(d time.Duration) Option {
	return func(a *Aggregator) {
		if d >= 0 {
			a.pace = d
		}
	}
}

// WithSeasonCache wires the per-season cache tier.
func WithSeasonCache(cache SeasonCache) Option {
	return func(a *Aggregator) {
		a.cache = cache
	}
}

// WithSeasonList overrides the season list. Tests use this to shrink the
// fixed set.
func WithSeasonList(list []string) Option {
	return func(a *Aggregator) {
		if len(list) > 0 {
			a.seasonList = list
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(log logger.Logger) Option {
	return func(a *Aggregator) {
		if log != nil {
			a.log = log
		}
	}
}
