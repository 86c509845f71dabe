package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/mlbdw/livetracker/internal/adapters/repository"
	"github.com/mlbdw/livetracker/internal/adapters/statsapi"
	"github.com/mlbdw/livetracker/internal/domain/lookup"
	"github.com/mlbdw/livetracker/internal/fixture"
	"github.com/mlbdw/livetracker/pkg/logger"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

type fakeClient struct {
	scheduleCalls atomic.Int32
}

func (f *fakeClient) Schedule(ctx context.Context, date string, sportID int) (*statsapi.SchedulePayload, error) {
	f.scheduleCalls.Add(1)
	return fixture.SchedulePayload(), nil
}

func (f *fakeClient) Boxscore(ctx context.Context, gameID int) (*statsapi.BoxscorePayload, error) {
	return fixture.BoxscorePayload(), nil
}

func (f *fakeClient) PlayByPlay(ctx context.Context, gameID int) (*statsapi.PlayByPlayPayload, error) {
	return fixture.PlayByPlayPayload(), nil
}

func TestServiceRefresh(t *testing.T) {
	Convey("Given a service over the synthetic game", t, func() {
		client := &fakeClient{}
		store := repository.NewMemoryStore()
		svc := New(client, store, lookup.NewTables(), WithDate(fixture.Date))

		Convey("When one refresh cycle runs", func() {
			err := svc.Refresh(context.Background())
			So(err, ShouldBeNil)

			snap, ok := store.Latest()
			So(ok, ShouldBeTrue)

			Convey("Then the snapshot covers the full slate", func() {
				So(snap.ID, ShouldNotBeEmpty)
				So(snap.Date, ShouldEqual, fixture.Date)
				So(snap.Games, ShouldEqual, 1)
				So(snap.Statcast, ShouldEqual, 1)
				// 4 balls + 3 strikes + 1 ball in play.
				So(snap.Rows, ShouldEqual, 8)
			})

			Convey("Then the pitcher summary reflects the walk, strikeout and single", func() {
				So(snap.PitcherSummary, ShouldHaveLength, 1)
				row := snap.PitcherSummary[0]
				So(row.Pitcher, ShouldEqual, fixture.Pitcher)
				So(row.TBF, ShouldEqual, 3)
				So(row.BB, ShouldEqual, 1)
				So(row.SO, ShouldEqual, 1)
				So(row.H, ShouldEqual, 1)
				// Outs = 3 - 1 hit - 1 walk = 1.
				So(row.IP, ShouldEqual, 0.33)
				So(row.CurrentPitcher, ShouldBeTrue)
			})

			Convey("Then the batted ball shows up in the exit velo table", func() {
				So(snap.ExitVelos, ShouldHaveLength, 1)
				So(snap.ExitVelos[0].Hitter, ShouldEqual, fixture.Batter)
				So(*snap.ExitVelos[0].EV, ShouldEqual, 98.0)
			})

			Convey("Then boxscore views are aggregated", func() {
				So(snap.Hitters, ShouldHaveLength, 1)
				// 1B*3 + BB*2 + R*2.
				So(snap.Hitters[0].DKPts, ShouldEqual, 7)
				So(snap.Scoreboard, ShouldHaveLength, 1)
				So(snap.Scoreboard[0].Score, ShouldEqual, "1-0")
			})
		})

		Convey("When two cycles run inside the schedule TTL", func() {
			So(svc.Refresh(context.Background()), ShouldBeNil)
			first, _ := store.Latest()
			So(svc.Refresh(context.Background()), ShouldBeNil)
			second, _ := store.Latest()

			Convey("Then the schedule fetch is shared", func() {
				So(client.scheduleCalls.Load(), ShouldEqual, 1)
			})

			Convey("Then each cycle publishes a fresh snapshot", func() {
				So(second.ID, ShouldNotEqual, first.ID)
			})
		})

		Convey("When stats are read after a cycle", func() {
			So(svc.Refresh(context.Background()), ShouldBeNil)
			stats := svc.GetStats()

			Convey("Then cycle counters and snapshot metadata are reported", func() {
				So(stats["refresh_cycles"], ShouldEqual, 1)
				So(stats["refresh_failures"], ShouldEqual, 0)
				So(stats, ShouldContainKey, "snapshot")
			})
		})
	})
}

func TestServiceLifecycle(t *testing.T) {
	Convey("Given a started service", t, func() {
		svc := New(&fakeClient{}, repository.NewMemoryStore(), lookup.NewTables(),
			WithDate(fixture.Date),
			WithRefreshInterval(time.Hour),
		)
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		So(svc.Start(ctx), ShouldBeNil)

		Convey("When Start is called again", func() {
			Convey("Then it reports already started", func() {
				So(svc.Start(ctx), ShouldEqual, ErrAlreadyStarted)
			})
		})

		Convey("When the service is stopped", func() {
			svc.Stop()

			Convey("Then the first cycle's snapshot stays readable", func() {
				_, ok := svc.Latest()
				So(ok, ShouldBeTrue)
			})

			Convey("Then stopping again is a no-op", func() {
				So(svc.Stop, ShouldNotPanic)
			})
		})
	})
}
