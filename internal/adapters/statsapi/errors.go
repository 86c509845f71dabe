package statsapi

import "errors"

// Package-level errors for the stats API adapter.
var (
	// ErrRequest indicates the request could not be built or sent.
	ErrRequest = errors.New("stats api request failed")

	// ErrStatus indicates a non-success HTTP status after retries.
	ErrStatus = errors.New("stats api returned non-success status")

	// ErrDecode indicates a response body that did not decode.
	ErrDecode = errors.New("stats api response decode failed")
)
