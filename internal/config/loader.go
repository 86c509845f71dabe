package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New)
//  2. file (YAML) if LGT_CONFIG is set
//  3. env (prefix LGT_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("LGT_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: LGT_ADDR, LGT_REFRESH_SECONDS, ...
	// Keys keep their underscores to match the koanf struct tags.
	envProvider := env.Provider("LGT_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "lgt_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.APIBaseURL == "":
		return fmt.Errorf("%w: api_base_url must not be empty", ErrInvalidConfig)
	case c.RefreshSeconds < 5:
		return fmt.Errorf("%w: refresh_seconds must be at least 5", ErrInvalidConfig)
	case c.FetchRetries < 1:
		return fmt.Errorf("%w: fetch_retries must be at least 1", ErrInvalidConfig)
	case c.MinFetchWorkers < 1 || c.MaxFetchWorkers < c.MinFetchWorkers:
		return fmt.Errorf("%w: fetch worker bounds are inverted", ErrInvalidConfig)
	case len(c.SportIDs) == 0:
		return fmt.Errorf("%w: sport_ids must not be empty", ErrInvalidConfig)
	}
	if c.Date != "" {
		if _, err := time.Parse("2006-01-02", c.Date); err != nil {
			return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidConfig)
		}
	}
	return nil
}

// RefreshInterval returns the refresh cadence as a duration.
func (c *Config) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshSeconds) * time.Second
}

// HTTPTimeout returns the per-request upstream timeout.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutMS) * time.Millisecond
}

// RetryBackoff returns the base retry backoff.
func (c *Config) RetryBackoff() time.Duration {
	return time.Duration(c.RetryBackoffMS) * time.Millisecond
}

// ScheduleTTL returns the schedule cache lifetime.
func (c *Config) ScheduleTTL() time.Duration {
	return time.Duration(c.ScheduleTTLSeconds) * time.Second
}

// GameTTL returns the boxscore/play-by-play cache lifetime.
func (c *Config) GameTTL() time.Duration {
	return time.Duration(c.GameTTLSeconds) * time.Second
}
