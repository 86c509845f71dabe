// Package statsapi fetches and flattens the MLB stats API feeds: the
// daily schedule, per-game boxscores and per-game play-by-play. All
// requests run behind a shared circuit breaker with linear-backoff
// retries on transport errors and retryable statuses.
package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/sony/gobreaker"

	"github.com/mlbdw/livetracker/pkg/logger"
	"github.com/mlbdw/livetracker/pkg/metrics"
)

// Default client configuration.
const (
	defaultBaseURL = "https://statsapi.mlb.com/api/v1"
	defaultTimeout = 12 * time.Second
	defaultRetries = 3
	defaultBackoff = 500 * time.Millisecond

	userAgent = "MLB-DW-Live-Tracker/2.0"
)

// Breaker trip thresholds.
const (
	breakerMinRequests  = 3
	breakerFailureRatio = 0.6
)

// Client is a stats API HTTP client.
type Client struct {
	base    string
	http    *http.Client
	timeout time.Duration
	retries int
	backoff time.Duration
	breaker *gobreaker.CircuitBreaker
	logger  logger.Logger
}

// New creates a stats API client with configuration options.
func New(opts ...Option) *Client {
	c := &Client{
		base:    defaultBaseURL,
		http:    &http.Client{},
		timeout: defaultTimeout,
		retries: defaultRetries,
		backoff: defaultBackoff,
		logger:  logger.Get().Named("statsapi"),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.breaker = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name: "statsapi",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= breakerMinRequests && ratio >= breakerFailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.SetBreakerOpen(to == gobreaker.StateOpen)
			c.logger.Warn(context.Background(), "circuit breaker state changed",
				logger.String("breaker", name),
				logger.String("from", from.String()),
				logger.String("to", to.String()),
			)
		},
	})
	return c
}

// Schedule fetches the schedule for one sport id on one date (YYYY-MM-DD).
func (c *Client) Schedule(ctx context.Context, date string, sportID int) (*SchedulePayload, error) {
	url := c.base + "/schedule/?sportId=" + strconv.Itoa(sportID) + "&date=" + date
	var out SchedulePayload
	if err := c.getJSON(ctx, "schedule", url, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Boxscore fetches one game's boxscore.
func (c *Client) Boxscore(ctx context.Context, gameID int) (*BoxscorePayload, error) {
	url := c.base + "/game/" + strconv.Itoa(gameID) + "/boxscore"
	var out BoxscorePayload
	if err := c.getJSON(ctx, "boxscore", url, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// PlayByPlay fetches one game's play-by-play feed.
func (c *Client) PlayByPlay(ctx context.Context, gameID int) (*PlayByPlayPayload, error) {
	url := c.base + "/game/" + strconv.Itoa(gameID) + "/playByPlay"
	var out PlayByPlayPayload
	if err := c.getJSON(ctx, "playByPlay", url, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// getJSON performs a GET with retries inside the circuit breaker and
// decodes the body into out.
func (c *Client) getJSON(ctx context.Context, endpoint, url string, out any) error {
	start := time.Now()
	_, err := c.breaker.Execute(func() (any, error) {
		return nil, c.getJSONOnce(ctx, endpoint, url, out)
	})
	metrics.RecordFetchLatency(endpoint, float64(time.Since(start).Milliseconds()))

	if err != nil {
		metrics.RecordFetch(endpoint, "error")
		return err
	}
	metrics.RecordFetch(endpoint, "success")
	return nil
}

func (c *Client) getJSONOnce(ctx context.Context, endpoint, url string, out any) error {
	var lastErr error
	for attempt := 1; attempt <= c.retries; attempt++ {
		if attempt > 1 {
			metrics.RecordFetchRetry()
			select {
			case <-ctx.Done():
				return fmt.Errorf("%w: %w", ErrRequest, ctx.Err())
			case <-time.After(c.backoff * time.Duration(attempt-1)):
			}
		}

		body, err := c.do(ctx, url)
		if err != nil {
			lastErr = err
			if retryable(err) {
				c.logger.Debug(ctx, "fetch attempt failed",
					logger.String("endpoint", endpoint),
					logger.Int("attempt", attempt),
					logger.Error(err),
				)
				continue
			}
			return err
		}

		if err := json.Unmarshal(body, out); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrDecode, endpoint, err)
		}
		return nil
	}
	return lastErr
}

// do performs a single GET and returns the body on a 2xx status. A
// retryable status is reported as a statusError.
func (c *Client) do(ctx context.Context, url string) ([]byte, error) {
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRequest, err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &transportError{err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &statusError{code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &transportError{err: err}
	}
	return body, nil
}

// transportError wraps a network-level failure; always retryable.
type transportError struct {
	err error
}

func (e *transportError) Error() string { return "transport error: " + e.err.Error() }
func (e *transportError) Unwrap() error { return e.err }

// statusError carries a non-success HTTP status.
type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return ErrStatus.Error() + ": " + strconv.Itoa(e.code)
}
func (e *statusError) Unwrap() error { return ErrStatus }

// retryable reports whether a failed attempt is worth repeating: any
// transport error, plus 429 and 5xx statuses.
func retryable(err error) bool {
	switch e := err.(type) {
	case *transportError:
		return true
	case *statusError:
		return e.code == http.StatusTooManyRequests || e.code >= 500
	default:
		return false
	}
}
