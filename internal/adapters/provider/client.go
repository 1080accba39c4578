// Package provider implements the remote stats fetcher: an HTTP client for
// the NBA stats endpoint that returns per-team per-game rows for a season.
package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/hooplytics/hooplytics/internal/domain/model"
	"github.com/hooplytics/hooplytics/internal/domain/seasons"
	"github.com/hooplytics/hooplytics/pkg/metrics"
)

// Default client configuration constants.
const (
	defaultBaseURL        = "https://stats.nba.com/stats"
	defaultTimeout        = 30 * time.Second
	defaultMaxRetries     = 3
	defaultInitialBackoff = 500 * time.Millisecond

	teamStatsEndpoint = "leaguedashteamstats"
	perModePerGame    = "PerGame"

	// The stats endpoint rejects requests that do not look like a browser.
	defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	refererHeader    = "https://stats.nba.com/"
)

// Client fetches team statistics from the stats provider.
type Client struct {
	baseURL        string
	httpClient     *http.Client
	userAgent      string
	maxRetries     uint64
	initialBackoff time.Duration
}

// NewClient constructs a Client with default configuration.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:        defaultBaseURL,
		httpClient:     &http.Client{Timeout: defaultTimeout},
		userAgent:      defaultUserAgent,
		maxRetries:     defaultMaxRetries,
		initialBackoff: defaultInitialBackoff,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// TeamStats returns one per-game row per team for the given season, tagged
// with that season. Transient provider failures are retried with
// exponential backoff; client-side mistakes (unknown season, malformed
// payload, 4xx responses) fail immediately.
func (c *Client) TeamStats(ctx context.Context, season string) ([]model.TeamSeasonStats, error) {
	if !seasons.Valid(season) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSeason, season)
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = c.initialBackoff
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, c.maxRetries), ctx)

	start := time.Now()
	rows, err := backoff.RetryWithData(func() ([]model.TeamSeasonStats, error) {
		return c.fetchOnce(ctx, season)
	}, policy)
	metrics.RecordFetchDuration(float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.RecordFetchError()
		return nil, err
	}
	metrics.RecordFetch()
	return rows, nil
}

// fetchOnce performs a single request. Errors wrapped with
// backoff.Permanent are not retried.
func (c *Client) fetchOnce(ctx context.Context, season string) ([]model.TeamSeasonStats, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.statsURL(season), nil)
	if err != nil {
		return nil, backoff.Permanent(fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Referer", refererHeader)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-nba-stats-origin", "stats")
	req.Header.Set("x-nba-stats-token", "true")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch {
	case resp.StatusCode >= http.StatusInternalServerError,
		resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, backoff.Permanent(fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode))
	}

	var payload statsPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, backoff.Permanent(fmt.Errorf("%w: %v", ErrBadPayload, err))
	}

	rows, err := payload.teamRows(season)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	return rows, nil
}

// statsURL builds the leaguedashteamstats URL in per-game mode. The long
// tail of empty parameters matches what the endpoint requires to answer.
func (c *Client) statsURL(season string) string {
	q := url.Values{}
	q.Set("Season", season)
	q.Set("PerMode", perModePerGame)
	q.Set("SeasonType", "Regular Season")
	q.Set("MeasureType", "Base")
	q.Set("LeagueID", "00")
	q.Set("Month", "0")
	q.Set("OpponentTeamID", "0")
	q.Set("TeamID", "0")
	q.Set("LastNGames", "0")
	q.Set("Period", "0")
	q.Set("PORound", "0")
	q.Set("PaceAdjust", "N")
	q.Set("PlusMinus", "N")
	q.Set("Rank", "N")
	q.Set("TwoWay", "0")
	for _, blank := range []string{
		"Conference", "DateFrom", "DateTo", "Division", "GameScope",
		"GameSegment", "Location", "Outcome", "PlayerExperience",
		"PlayerPosition", "SeasonSegment", "ShotClockRange", "StarterBench",
		"VsConference", "VsDivision",
	} {
		q.Set(blank, "")
	}
	return c.baseURL + "/" + teamStatsEndpoint + "?" + q.Encode()
}
