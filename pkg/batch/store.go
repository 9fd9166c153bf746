package batch

import (
	"context"
	"time"
)

// Store persists job statuses with a bounded lifetime.
// Statuses expire after the store's TTL so finished jobs do not accumulate.
type Store interface {
	// Get retrieves a job status.
	// Returns ErrNotFound if the job is unknown or its status has expired.
	Get(ctx context.Context, jobID string) (Status, error)

	// Set stores a job status, refreshing its expiry.
	Set(ctx context.Context, jobID string, status Status) error

	// Close releases resources (stops background goroutines, etc.).
	Close() error
}

const defaultStatusTTL = time.Hour
