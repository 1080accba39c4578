package provider_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hooplytics/hooplytics/internal/adapters/provider"
	. "github.com/smartystreets/goconvey/convey"
)

const statsBody = `{
	"resultSets": [{
		"name": "LeagueDashTeamStats",
		"headers": ["TEAM_ID", "TEAM_NAME", "GP", "W", "L", "W_PCT", "FG3M", "FG3A", "FG3_PCT", "PTS"],
		"rowSet": [
			[1610612743, "Denver Nuggets", 82, 53, 29, 0.646, 11.5, 30.0, 0.385, 115.8],
			[1610612744, "Golden State Warriors", 82, 44, 38, 0.537, 16.5, 43.0, 0.384, 118.9]
		]
	}]
}`

func newClient(base string) *provider.Client {
	return provider.NewClient(
		provider.WithBaseURL(base),
		provider.WithRetry(2, time.Millisecond),
		provider.WithTimeout(2*time.Second),
	)
}

func TestTeamStats(t *testing.T) {
	Convey("Given a provider returning a valid result set", t, func() {
		var gotQuery atomic.Value
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotQuery.Store(r.URL.Query().Encode())
			fmt.Fprint(w, statsBody)
		}))
		defer srv.Close()

		client := newClient(srv.URL)
		rows, err := client.TeamStats(context.Background(), "2022-23")

		Convey("Then the rows decode with the season tag applied", func() {
			So(err, ShouldBeNil)
			So(rows, ShouldHaveLength, 2)
			So(rows[0].Season, ShouldEqual, "2022-23")
			So(rows[0].TeamName, ShouldEqual, "Denver Nuggets")
			So(rows[0].GamesPlayed, ShouldEqual, 82)
			So(rows[0].Wins, ShouldEqual, 53)
			So(rows[0].Losses, ShouldEqual, 29)
			So(rows[0].ThreesMade, ShouldAlmostEqual, 11.5, 0.0001)
			So(rows[0].ThreesAttempted, ShouldAlmostEqual, 30.0, 0.0001)
			So(rows[0].ThreePct, ShouldAlmostEqual, 0.385, 0.0001)
			So(rows[0].Points, ShouldAlmostEqual, 115.8, 0.0001)
			So(rows[1].Season, ShouldEqual, "2022-23")
		})

		Convey("Then the request asks for per-game regular season stats", func() {
			q, _ := gotQuery.Load().(string)
			So(q, ShouldContainSubstring, "PerMode=PerGame")
			So(q, ShouldContainSubstring, "Season=2022-23")
			So(q, ShouldContainSubstring, "SeasonType=Regular+Season")
		})
	})

	Convey("Given a provider that fails once before succeeding", t, func() {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if atomic.AddInt32(&calls, 1) == 1 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			fmt.Fprint(w, statsBody)
		}))
		defer srv.Close()

		client := newClient(srv.URL)
		rows, err := client.TeamStats(context.Background(), "2022-23")

		Convey("Then the retry recovers transparently", func() {
			So(err, ShouldBeNil)
			So(rows, ShouldHaveLength, 2)
			So(atomic.LoadInt32(&calls), ShouldEqual, 2)
		})
	})

	Convey("Given a provider that keeps failing", t, func() {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer srv.Close()

		client := newClient(srv.URL)
		_, err := client.TeamStats(context.Background(), "2022-23")

		Convey("Then a typed unavailability error surfaces after bounded retries", func() {
			So(err, ShouldNotBeNil)
			So(errors.Is(err, provider.ErrUnavailable), ShouldBeTrue)
			So(atomic.LoadInt32(&calls), ShouldEqual, 3) // initial try + 2 retries
		})
	})

	Convey("Given a provider answering 404", t, func() {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		client := newClient(srv.URL)
		_, err := client.TeamStats(context.Background(), "2022-23")

		Convey("Then the failure is permanent and not retried", func() {
			So(err, ShouldNotBeNil)
			So(errors.Is(err, provider.ErrUnavailable), ShouldBeTrue)
			So(atomic.LoadInt32(&calls), ShouldEqual, 1)
		})
	})

	Convey("Given a payload without the required columns", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"resultSets":[{"name":"x","headers":["TEAM_NAME"],"rowSet":[["Denver Nuggets"]]}]}`)
		}))
		defer srv.Close()

		client := newClient(srv.URL)
		_, err := client.TeamStats(context.Background(), "2022-23")

		Convey("Then a malformed-payload error surfaces", func() {
			So(err, ShouldNotBeNil)
			So(errors.Is(err, provider.ErrBadPayload), ShouldBeTrue)
		})
	})

	Convey("Given a season outside the fixed set", t, func() {
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
		}))
		defer srv.Close()

		client := newClient(srv.URL)
		_, err := client.TeamStats(context.Background(), "1999-00")

		Convey("Then the request is rejected before touching the network", func() {
			So(err, ShouldNotBeNil)
			So(errors.Is(err, provider.ErrUnknownSeason), ShouldBeTrue)
			So(atomic.LoadInt32(&calls), ShouldEqual, 0)
		})
	})

	Convey("Given a cancelled context", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		client := newClient(srv.URL)
		_, err := client.TeamStats(ctx, "2022-23")

		Convey("Then the fetch gives up promptly", func() {
			So(err, ShouldNotBeNil)
		})
	})
}
