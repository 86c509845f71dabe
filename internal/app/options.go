package service

import (
	"time"

	"github.com/mlbdw/livetracker/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDate pins the tracked date (YYYY-MM-DD). Empty means today in US
// Eastern time, resolved at each cycle.
func WithDate(date string) Option {
	return func(s *Service) { s.date = date }
}

// WithSportIDs sets the schedule sport ids to track.
func WithSportIDs(ids []int) Option {
	return func(s *Service) {
		if len(ids) > 0 {
			s.sportIDs = ids
		}
	}
}

// WithRefreshInterval sets the cycle interval.
func WithRefreshInterval(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.interval = d
		}
	}
}

// WithScheduleTTL sets the schedule cache lifetime.
func WithScheduleTTL(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.scheduleTTL = d
		}
	}
}

// WithGameTTL sets the boxscore and play-by-play cache lifetime.
func WithGameTTL(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.gameTTL = d
		}
	}
}

// WithWorkerBounds sets the fetch pool's worker bounds.
func WithWorkerBounds(minWorkers, maxWorkers int) Option {
	return func(s *Service) {
		s.minWorkers = minWorkers
		s.maxWorkers = maxWorkers
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
