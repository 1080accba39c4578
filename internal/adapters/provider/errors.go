package provider

import "errors"

// Sentinel kinds for provider errors.
var (
	ErrUnknownSeason = errors.New("unknown season")
	ErrUnavailable   = errors.New("stats provider unavailable")
	ErrBadPayload    = errors.New("malformed stats payload")
)
