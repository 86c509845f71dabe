// Package fetch fans per-game feed fetches out over a bounded worker
// pool. The pool is sized to the day's slate and a single slow or
// failing game never blocks the rest of the cycle.
package fetch

import (
	"context"
	"sync"

	"github.com/mlbdw/livetracker/internal/adapters/statsapi"
	"github.com/mlbdw/livetracker/internal/domain/model"
	"github.com/mlbdw/livetracker/pkg/logger"
)

// Default worker bounds.
const (
	defaultMinWorkers = 4
	defaultMaxWorkers = 12
	workersPerGame    = 2
)

// Source provides the two per-game feeds.
type Source interface {
	Boxscore(ctx context.Context, gameID int) (*statsapi.BoxscorePayload, error)
	PlayByPlay(ctx context.Context, gameID int) (*statsapi.PlayByPlayPayload, error)
}

// GameData is one game's fetched feeds. A failed feed leaves its payload
// nil with the error recorded; callers work with whatever arrived.
type GameData struct {
	Game       model.Game
	Box        *statsapi.BoxscorePayload
	PlayByPlay *statsapi.PlayByPlayPayload
	BoxErr     error
	PlayErr    error
}

// Pool fetches game feeds concurrently.
type Pool struct {
	source     Source
	minWorkers int
	maxWorkers int
	logger     logger.Logger
}

// Option applies a configuration option to the Pool.
type Option func(*Pool)

// WithWorkerBounds sets the minimum and maximum worker counts.
func WithWorkerBounds(minWorkers, maxWorkers int) Option {
	return func(p *Pool) {
		if minWorkers > 0 {
			p.minWorkers = minWorkers
		}
		if maxWorkers > 0 {
			p.maxWorkers = maxWorkers
		}
	}
}

// WithLogger sets a custom logger for the pool.
func WithLogger(l logger.Logger) Option {
	return func(p *Pool) {
		if l != nil {
			p.logger = l
		}
	}
}

// NewPool creates a pool over a feed source with configuration options.
func NewPool(source Source, opts ...Option) *Pool {
	p := &Pool{
		source:     source,
		minWorkers: defaultMinWorkers,
		maxWorkers: defaultMaxWorkers,
		logger:     logger.Get().Named("fetch-pool"),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.maxWorkers < p.minWorkers {
		p.maxWorkers = p.minWorkers
	}
	return p
}

// Workers returns the pool size for a slate of n games: two workers per
// game, clamped to the configured bounds.
func (p *Pool) Workers(n int) int {
	workers := n * workersPerGame
	if workers < p.minWorkers {
		workers = p.minWorkers
	}
	if workers > p.maxWorkers {
		workers = p.maxWorkers
	}
	return workers
}

// FetchGames fetches both feeds for every game and returns results in
// input order.
func (p *Pool) FetchGames(ctx context.Context, games []model.Game) []GameData {
	results := make([]GameData, len(games))
	if len(games) == 0 {
		return results
	}

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < p.Workers(len(games)); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = p.fetchGame(ctx, games[i])
			}
		}()
	}

	for i := range games {
		select {
		case <-ctx.Done():
		case jobs <- i:
			continue
		}
		break
	}
	close(jobs)
	wg.Wait()

	return results
}

func (p *Pool) fetchGame(ctx context.Context, game model.Game) GameData {
	data := GameData{Game: game}

	data.Box, data.BoxErr = p.source.Boxscore(ctx, game.GameID)
	if data.BoxErr != nil {
		p.logger.Warn(ctx, "boxscore fetch failed",
			logger.Int("game_id", game.GameID),
			logger.Error(data.BoxErr),
		)
	}

	data.PlayByPlay, data.PlayErr = p.source.PlayByPlay(ctx, game.GameID)
	if data.PlayErr != nil {
		p.logger.Warn(ctx, "play-by-play fetch failed",
			logger.Int("game_id", game.GameID),
			logger.Error(data.PlayErr),
		)
	}

	return data
}
