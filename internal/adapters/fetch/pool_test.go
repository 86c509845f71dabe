package fetch

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/mlbdw/livetracker/internal/adapters/statsapi"
	"github.com/mlbdw/livetracker/internal/domain/model"
	"github.com/mlbdw/livetracker/pkg/logger"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

type fakeSource struct {
	boxCalls  atomic.Int32
	playCalls atomic.Int32
	failBox   map[int]bool
	failPlay  map[int]bool
}

func (f *fakeSource) Boxscore(ctx context.Context, gameID int) (*statsapi.BoxscorePayload, error) {
	f.boxCalls.Add(1)
	if f.failBox[gameID] {
		return nil, errors.New("boxscore unavailable")
	}
	return &statsapi.BoxscorePayload{}, nil
}

func (f *fakeSource) PlayByPlay(ctx context.Context, gameID int) (*statsapi.PlayByPlayPayload, error) {
	f.playCalls.Add(1)
	if f.failPlay[gameID] {
		return nil, errors.New("play-by-play unavailable")
	}
	return &statsapi.PlayByPlayPayload{}, nil
}

func slate(n int) []model.Game {
	games := make([]model.Game, n)
	for i := range games {
		games[i] = model.Game{GameID: 1000 + i, Status: model.StatusLive}
	}
	return games
}

func TestPoolWorkers(t *testing.T) {
	Convey("Given a pool with bounds of four and twelve", t, func() {
		pool := NewPool(&fakeSource{}, WithWorkerBounds(4, 12))

		Convey("When the slate is small", func() {
			Convey("Then the floor applies", func() {
				So(pool.Workers(1), ShouldEqual, 4)
			})
		})

		Convey("When the slate is mid-sized", func() {
			Convey("Then two workers per game are used", func() {
				So(pool.Workers(4), ShouldEqual, 8)
			})
		})

		Convey("When the slate is large", func() {
			Convey("Then the ceiling applies", func() {
				So(pool.Workers(15), ShouldEqual, 12)
			})
		})
	})
}

func TestPoolFetchGames(t *testing.T) {
	Convey("Given a slate of five games", t, func() {
		source := &fakeSource{failBox: map[int]bool{1002: true}, failPlay: map[int]bool{1003: true}}
		pool := NewPool(source)
		games := slate(5)

		Convey("When the slate is fetched", func() {
			results := pool.FetchGames(context.Background(), games)

			Convey("Then every game gets a result in input order", func() {
				So(results, ShouldHaveLength, 5)
				for i, r := range results {
					So(r.Game.GameID, ShouldEqual, games[i].GameID)
				}
				So(source.boxCalls.Load(), ShouldEqual, 5)
				So(source.playCalls.Load(), ShouldEqual, 5)
			})

			Convey("Then a failed feed is recorded without dropping the rest", func() {
				So(results[2].Box, ShouldBeNil)
				So(results[2].BoxErr, ShouldNotBeNil)
				So(results[2].PlayByPlay, ShouldNotBeNil)

				So(results[3].Box, ShouldNotBeNil)
				So(results[3].PlayErr, ShouldNotBeNil)

				So(results[0].BoxErr, ShouldBeNil)
				So(results[0].PlayErr, ShouldBeNil)
			})
		})
	})

	Convey("Given an empty slate", t, func() {
		pool := NewPool(&fakeSource{})

		Convey("When the slate is fetched", func() {
			results := pool.FetchGames(context.Background(), nil)

			Convey("Then the result is empty", func() {
				So(results, ShouldBeEmpty)
			})
		})
	})
}
