package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/hooplytics/hooplytics/internal/adapters/repository"
	"github.com/hooplytics/hooplytics/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) now() time.Time          { return c.current }
func (c *fakeClock) advance(d time.Duration) { c.current = c.current.Add(d) }

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	rows := []model.TeamSeasonStats{
		{Season: "2022-23", TeamName: "Denver Nuggets", ThreesMade: 11.5},
	}
	records := []model.SeasonRecord{
		{Season: "2022-23", TeamName: "Denver Nuggets", IsChampion: true},
	}

	Convey("Given a memory store with a one-hour TTL", t, func() {
		clock := &fakeClock{current: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)}
		store := repository.NewMemoryStore(
			repository.WithTTL(time.Hour),
			repository.WithClock(clock.now),
		)

		Convey("When nothing has been cached", func() {
			Convey("Then both tiers miss", func() {
				_, ok := store.Season(ctx, "2022-23")
				So(ok, ShouldBeFalse)
				_, ok = store.Dataset(ctx)
				So(ok, ShouldBeFalse)
				So(store.Len(ctx), ShouldEqual, 0)
			})
		})

		Convey("When a season is cached", func() {
			store.SetSeason(ctx, "2022-23", rows)

			Convey("Then it hits within the TTL", func() {
				got, ok := store.Season(ctx, "2022-23")
				So(ok, ShouldBeTrue)
				So(got, ShouldResemble, rows)
				So(store.Len(ctx), ShouldEqual, 1)
			})

			Convey("Then other seasons still miss", func() {
				_, ok := store.Season(ctx, "2023-24")
				So(ok, ShouldBeFalse)
			})

			Convey("Then it misses once the TTL has passed", func() {
				clock.advance(time.Hour + time.Minute)
				_, ok := store.Season(ctx, "2022-23")
				So(ok, ShouldBeFalse)
				So(store.Len(ctx), ShouldEqual, 0)
			})

			Convey("Then mutating the returned slice does not corrupt the cache", func() {
				got, _ := store.Season(ctx, "2022-23")
				got[0].TeamName = "mutated"
				fresh, _ := store.Season(ctx, "2022-23")
				So(fresh[0].TeamName, ShouldEqual, "Denver Nuggets")
			})
		})

		Convey("When the dataset is cached", func() {
			store.SetDataset(ctx, records)

			Convey("Then it hits within the TTL", func() {
				got, ok := store.Dataset(ctx)
				So(ok, ShouldBeTrue)
				So(got, ShouldResemble, records)
			})

			Convey("Then it misses after expiry", func() {
				clock.advance(2 * time.Hour)
				_, ok := store.Dataset(ctx)
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When both tiers are populated and cleared", func() {
			store.SetSeason(ctx, "2022-23", rows)
			store.SetDataset(ctx, records)
			So(store.Len(ctx), ShouldEqual, 2)

			store.Clear(ctx)

			Convey("Then every entry is gone", func() {
				_, ok := store.Season(ctx, "2022-23")
				So(ok, ShouldBeFalse)
				_, ok = store.Dataset(ctx)
				So(ok, ShouldBeFalse)
				So(store.Len(ctx), ShouldEqual, 0)
			})
		})

		Convey("When an entry is overwritten", func() {
			store.SetSeason(ctx, "2022-23", rows)
			clock.advance(50 * time.Minute)
			store.SetSeason(ctx, "2022-23", rows)
			clock.advance(30 * time.Minute)

			Convey("Then the newer timestamp wins", func() {
				_, ok := store.Season(ctx, "2022-23")
				So(ok, ShouldBeTrue)
			})
		})
	})
}
