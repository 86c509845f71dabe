// Package config defines tracker configuration and loading.
//
// Conventions follow the rest of the codebase: defaults come from New,
// a YAML file and LGT_-prefixed environment variables may layer on top,
// and validation happens once at load time.
package config

// Config contains process configuration. Interval-valued settings are
// plain seconds/milliseconds so they layer cleanly from env vars.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// APIBaseURL points at the stats API, without a trailing slash.
	APIBaseURL string `koanf:"api_base_url"`

	// Date selects the schedule date as YYYY-MM-DD. Empty means today
	// in US/Eastern, re-evaluated each refresh cycle.
	Date string `koanf:"date"`

	// SportIDs lists the league identifiers to poll (1 = MLB).
	SportIDs []int `koanf:"sport_ids"`

	// RefreshSeconds is the snapshot rebuild interval.
	RefreshSeconds int `koanf:"refresh_seconds"`

	// HTTPTimeoutMS bounds a single upstream request.
	HTTPTimeoutMS int `koanf:"http_timeout_ms"`

	// FetchRetries is the attempt count for transient upstream failures.
	FetchRetries int `koanf:"fetch_retries"`

	// RetryBackoffMS is the base backoff between attempts.
	RetryBackoffMS int `koanf:"retry_backoff_ms"`

	// MinFetchWorkers and MaxFetchWorkers bound the per-cycle fetch pool.
	MinFetchWorkers int `koanf:"min_fetch_workers"`
	MaxFetchWorkers int `koanf:"max_fetch_workers"`

	// ScheduleTTLSeconds and GameTTLSeconds control payload caching.
	ScheduleTTLSeconds int `koanf:"schedule_ttl_seconds"`
	GameTTLSeconds     int `koanf:"game_ttl_seconds"`

	// DataDir holds the lookup CSV files.
	DataDir string `koanf:"data_dir"`
}

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		LogLevel:           "info",
		Addr:               ":8080",
		APIBaseURL:         "https://statsapi.mlb.com/api/v1",
		Date:               "",
		SportIDs:           []int{1},
		RefreshSeconds:     30,
		HTTPTimeoutMS:      12_000,
		FetchRetries:       3,
		RetryBackoffMS:     500,
		MinFetchWorkers:    4,
		MaxFetchWorkers:    12,
		ScheduleTTLSeconds: 60,
		GameTTLSeconds:     30,
		DataDir:            "./files",
	}
}
