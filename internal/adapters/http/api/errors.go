package api

import "errors"

// Package-level errors for the API layer.
var (
	// ErrNotReady indicates no snapshot has been published yet.
	ErrNotReady = errors.New("no snapshot published yet")

	// ErrBadQuery indicates an unparseable query parameter.
	ErrBadQuery = errors.New("invalid query parameter")
)
