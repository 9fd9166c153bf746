package batch

import "errors"

var (
	// ErrNotFound is returned by status stores for unknown or expired job IDs.
	ErrNotFound = errors.New("batch: job not found")

	// ErrQueueFull is returned when a job cannot be accepted because the
	// submission queue is at capacity.
	ErrQueueFull = errors.New("batch: submission queue full")

	// ErrAlreadyStarted is returned when starting a processor that is running.
	ErrAlreadyStarted = errors.New("batch: already started")

	// ErrNotStarted is returned when submitting to a processor that is not running.
	ErrNotStarted = errors.New("batch: not started")
)
