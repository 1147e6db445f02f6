package domain

import "errors"

var (
	// ErrInvalidState is returned when an operation's preconditions are violated.
	ErrInvalidState = errors.New("invalid state")
	// ErrRequestFailed is returned when a call to the publishing backend fails.
	ErrRequestFailed = errors.New("request failed")
	// ErrNothingToPublish is returned when no destination changed.
	ErrNothingToPublish = errors.New("nothing to publish")
	// ErrNothingToUnpublish is returned when no destination is marked for unpublishing.
	ErrNothingToUnpublish = errors.New("nothing to unpublish")
	// ErrSessionNotFound is returned for unknown publish sessions.
	ErrSessionNotFound = errors.New("session not found")
	// ErrJobNotFound is returned for unknown publish jobs.
	ErrJobNotFound = errors.New("job not found")
)
