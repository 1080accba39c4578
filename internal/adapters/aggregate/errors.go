package aggregate

import "errors"

// Sentinel kinds for aggregation errors.
var (
	ErrNoFetcher = errors.New("no fetcher configured")
)
