// Package service runs the refresh loop: fetch the day's slate, flatten
// and derive the pitch table, aggregate the dashboard views and publish
// them as an immutable snapshot. It also implements the dependencies the
// HTTP API reads from.
package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mlbdw/livetracker/internal/adapters/cache"
	"github.com/mlbdw/livetracker/internal/adapters/fetch"
	"github.com/mlbdw/livetracker/internal/adapters/repository"
	"github.com/mlbdw/livetracker/internal/adapters/statsapi"
	"github.com/mlbdw/livetracker/internal/domain/aggregate"
	"github.com/mlbdw/livetracker/internal/domain/derive"
	"github.com/mlbdw/livetracker/internal/domain/lookup"
	"github.com/mlbdw/livetracker/internal/domain/model"
	"github.com/mlbdw/livetracker/pkg/logger"
	"github.com/mlbdw/livetracker/pkg/metrics"
)

// Default service configuration.
const (
	defaultInterval    = 30 * time.Second
	defaultScheduleTTL = 60 * time.Second
	defaultGameTTL     = 30 * time.Second

	easternTZ = "America/New_York"
)

// Client provides the three upstream feeds.
type Client interface {
	Schedule(ctx context.Context, date string, sportID int) (*statsapi.SchedulePayload, error)
	Boxscore(ctx context.Context, gameID int) (*statsapi.BoxscorePayload, error)
	PlayByPlay(ctx context.Context, gameID int) (*statsapi.PlayByPlayPayload, error)
}

// Service is the refresh loop plus the read surface for the API.
type Service struct {
	mu sync.Mutex

	client Client
	store  repository.Store
	tables *lookup.Tables
	pool   *fetch.Pool

	scheduleCache *cache.Cache[*statsapi.SchedulePayload]

	date        string
	sportIDs    []int
	interval    time.Duration
	scheduleTTL time.Duration
	gameTTL     time.Duration
	minWorkers  int
	maxWorkers  int

	started bool
	stopCh  chan struct{}
	doneCh  chan struct{}

	// Cycle bookkeeping for /stats.
	cycles    int64
	failures  int64
	lastError string

	logger logger.Logger
}

// New creates a service over a feed client, snapshot store and lookup
// tables, with configuration options.
func New(client Client, store repository.Store, tables *lookup.Tables, opts ...Option) *Service {
	s := &Service{
		client:      client,
		store:       store,
		tables:      tables,
		sportIDs:    []int{1},
		interval:    defaultInterval,
		scheduleTTL: defaultScheduleTTL,
		gameTTL:     defaultGameTTL,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
		logger:      logger.Get().Named("service"),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.scheduleCache = cache.New(
		cache.WithName[*statsapi.SchedulePayload]("schedule"),
		cache.WithTTL[*statsapi.SchedulePayload](s.scheduleTTL),
	)

	source := newCachedSource(client, s.gameTTL)
	poolOpts := []fetch.Option{fetch.WithLogger(s.logger.Named("fetch"))}
	if s.minWorkers > 0 || s.maxWorkers > 0 {
		poolOpts = append(poolOpts, fetch.WithWorkerBounds(s.minWorkers, s.maxWorkers))
	}
	s.pool = fetch.NewPool(source, poolOpts...)

	return s
}

// Start runs one refresh immediately, then keeps refreshing on the
// configured interval until Stop or context cancellation.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return ErrAlreadyStarted
	}
	s.started = true
	s.mu.Unlock()

	if err := s.Refresh(ctx); err != nil {
		s.logger.Warn(ctx, "initial refresh failed", logger.Error(err))
	}

	go s.run(ctx)
	return nil
}

func (s *Service) run(ctx context.Context) {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
			if err := s.Refresh(ctx); err != nil {
				s.logger.Warn(ctx, "refresh failed", logger.Error(err))
			}
		}
	}
}

// Stop halts the refresh loop and waits for the current cycle to finish.
// Repeated calls are no-ops.
func (s *Service) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.started = false
	s.mu.Unlock()

	close(s.stopCh)
	<-s.doneCh
}

// Refresh runs one full cycle and publishes the resulting snapshot.
func (s *Service) Refresh(ctx context.Context) error {
	start := time.Now()
	metrics.RecordRefreshCycle()

	err := s.refresh(ctx)

	metrics.RecordRefreshDuration(float64(time.Since(start).Milliseconds()))
	s.mu.Lock()
	s.cycles++
	if err != nil {
		s.failures++
		s.lastError = err.Error()
		metrics.RecordRefreshFailure()
	} else {
		s.lastError = ""
	}
	s.mu.Unlock()
	return err
}

func (s *Service) refresh(ctx context.Context) error {
	date := s.trackedDate()
	games, err := s.liveGames(ctx, date)
	if err != nil {
		return err
	}
	metrics.UpdateGamesTracked(len(games))

	results := s.pool.FetchGames(ctx, games)

	var batting []model.BattingLine
	var pitching []model.PitchingLine
	var events []model.PitchEvent
	statcastGames := 0

	for i := range results {
		r := &results[i]
		if r.Box != nil {
			b, p := statsapi.ParseBoxscore(r.Game, r.Box)
			batting = append(batting, b...)
			pitching = append(pitching, p...)
		}
		if r.PlayByPlay != nil {
			rows, statcast := statsapi.ParsePlayByPlay(r.Game, r.Box, r.PlayByPlay, r.Game.LeagueLevel)
			// Only Statcast-tracked games feed the derivation pipeline; the
			// rest still contribute boxscore views.
			if statcast {
				statcastGames++
				events = append(events, rows...)
			}
		}
	}

	derived := derive.Derive(events, s.tables)
	metrics.UpdatePitchRows(len(derived.Rows))
	metrics.RecordDuplicatePitches(derived.Duplicates)

	lines := aggregate.PitcherLines(pitching)
	current := aggregate.CurrentPitchers(derived.Rows)

	snap := &repository.Snapshot{
		ID:       uuid.NewString(),
		BuiltAt:  time.Now(),
		Date:     date,
		Games:    len(games),
		Statcast: statcastGames,
		Rows:     len(derived.Rows),

		Scoreboard:     aggregate.Scoreboard(batting, pitching, s.tables),
		Hitters:        aggregate.HitterLeaders(batting, s.tables),
		Pitchers:       aggregate.PitcherLeaders(pitching, s.tables),
		PitcherSummary: aggregate.PitcherSummaries(derived.Rows, lines, current),
		PitchMix:       aggregate.PitchMixSummaries(derived.Rows, s.tables),
		ExitVelos:      aggregate.ExitVelos(derived.Rows),
		HomeRuns:       aggregate.HomeRuns(derived.Rows),
	}
	s.store.Publish(snap)
	metrics.RecordSnapshotBuild(snap.BuiltAt.Unix())

	s.logger.Info(ctx, "snapshot published",
		logger.String("snapshot_id", snap.ID),
		logger.String("date", date),
		logger.Int("games", len(games)),
		logger.Int("statcast_games", statcastGames),
		logger.Int("pitch_rows", snap.Rows),
		logger.Int("duplicates", derived.Duplicates),
	)
	return nil
}

// liveGames fetches the schedule for every tracked sport id and keeps
// in-progress and final games. One failed sport id degrades; all failing
// with no games is an error.
func (s *Service) liveGames(ctx context.Context, date string) ([]model.Game, error) {
	var games []model.Game
	var lastErr error
	fetched := false

	for _, sportID := range s.sportIDs {
		payload, err := s.schedule(ctx, date, sportID)
		if err != nil {
			lastErr = err
			s.logger.Warn(ctx, "schedule fetch failed",
				logger.Int("sport_id", sportID),
				logger.Error(err),
			)
			continue
		}
		fetched = true
		for _, g := range statsapi.ParseSchedule(payload, date, sportID) {
			if g.Tracked() {
				games = append(games, g)
			}
		}
	}

	if !fetched {
		if lastErr != nil {
			return nil, lastErr
		}
		return nil, ErrNoSchedule
	}
	return games, nil
}

func (s *Service) schedule(ctx context.Context, date string, sportID int) (*statsapi.SchedulePayload, error) {
	key := date + "/" + strconv.Itoa(sportID)
	if payload, ok := s.scheduleCache.Get(key); ok {
		return payload, nil
	}
	payload, err := s.client.Schedule(ctx, date, sportID)
	if err != nil {
		return nil, err
	}
	s.scheduleCache.Set(key, payload)
	return payload, nil
}

// trackedDate resolves the cycle's date: the pinned date when set,
// otherwise today in US Eastern time.
func (s *Service) trackedDate() string {
	if s.date != "" {
		return s.date
	}
	loc, err := time.LoadLocation(easternTZ)
	if err != nil {
		loc = time.UTC
	}
	return time.Now().In(loc).Format("2006-01-02")
}

// GetStats reports service counters for the stats endpoint.
func (s *Service) GetStats() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := map[string]any{
		"refresh_cycles":   s.cycles,
		"refresh_failures": s.failures,
		"interval_seconds": int(s.interval.Seconds()),
		"sport_ids":        s.sportIDs,
	}
	if s.lastError != "" {
		stats["last_error"] = s.lastError
	}
	if snap, ok := s.store.Latest(); ok {
		stats["snapshot"] = snap.Meta(time.Now())
		stats["statcast_games"] = snap.Statcast
	}
	return stats
}

// Latest exposes the current snapshot for the API layer.
func (s *Service) Latest() (*repository.Snapshot, bool) {
	return s.store.Latest()
}

// cachedSource wraps the client with per-game TTL caches for the fetch
// pool.
type cachedSource struct {
	client Client
	box    *cache.Cache[*statsapi.BoxscorePayload]
	pbp    *cache.Cache[*statsapi.PlayByPlayPayload]
}

func newCachedSource(client Client, ttl time.Duration) *cachedSource {
	return &cachedSource{
		client: client,
		box: cache.New(
			cache.WithName[*statsapi.BoxscorePayload]("boxscore"),
			cache.WithTTL[*statsapi.BoxscorePayload](ttl),
		),
		pbp: cache.New(
			cache.WithName[*statsapi.PlayByPlayPayload]("playByPlay"),
			cache.WithTTL[*statsapi.PlayByPlayPayload](ttl),
		),
	}
}

func (c *cachedSource) Boxscore(ctx context.Context, gameID int) (*statsapi.BoxscorePayload, error) {
	key := strconv.Itoa(gameID)
	if payload, ok := c.box.Get(key); ok {
		return payload, nil
	}
	payload, err := c.client.Boxscore(ctx, gameID)
	if err != nil {
		return nil, err
	}
	c.box.Set(key, payload)
	return payload, nil
}

func (c *cachedSource) PlayByPlay(ctx context.Context, gameID int) (*statsapi.PlayByPlayPayload, error) {
	key := strconv.Itoa(gameID)
	if payload, ok := c.pbp.Get(key); ok {
		return payload, nil
	}
	payload, err := c.client.PlayByPlay(ctx, gameID)
	if err != nil {
		return nil, err
	}
	c.pbp.Set(key, payload)
	return payload, nil
}
