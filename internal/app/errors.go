package service

import "errors"

// Sentinel kinds for service errors.
var (
	ErrNotStarted    = errors.New("service not started")
	ErrNoFetcher     = errors.New("no stats fetcher configured")
	ErrUnknownSeason = errors.New("unknown season")
	ErrBadFilter     = errors.New("invalid filter")
)
