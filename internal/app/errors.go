package service

import "errors"

// Package-level errors for the refresh service.
var (
	// ErrAlreadyStarted indicates Start was called twice.
	ErrAlreadyStarted = errors.New("service already started")

	// ErrNoSchedule indicates every schedule fetch in a cycle failed.
	ErrNoSchedule = errors.New("no schedule available")
)
