package batch

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a status store backed by Redis, serializing statuses as JSON.
// Use it when multiple instances must serve status polls for the same jobs.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// RedisOption configures a RedisStore.
type RedisOption func(*RedisStore)

// WithRedisTTL overrides the default one-hour status lifetime.
func WithRedisTTL(ttl time.Duration) RedisOption {
	return func(s *RedisStore) {
		s.ttl = ttl
	}
}

// WithRedisPrefix overrides the default "job:" key prefix.
func WithRedisPrefix(prefix string) RedisOption {
	return func(s *RedisStore) {
		s.prefix = prefix
	}
}

// NewRedisStore creates a Redis-backed status store.
// The caller owns the client's lifecycle; Close here is a no-op.
func NewRedisStore(client redis.UniversalClient, opts ...RedisOption) *RedisStore {
	s := &RedisStore{
		client: client,
		prefix: "job:",
		ttl:    defaultStatusTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get retrieves a job status.
// Returns ErrNotFound if the job is unknown or its status has expired.
func (s *RedisStore) Get(ctx context.Context, jobID string) (Status, error) {
	data, err := s.client.Get(ctx, s.prefix+jobID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Status{}, ErrNotFound
		}
		return Status{}, err
	}

	var status Status
	if err := json.Unmarshal(data, &status); err != nil {
		return Status{}, err
	}
	return status, nil
}

// Set stores a job status, refreshing its expiry.
func (s *RedisStore) Set(ctx context.Context, jobID string, status Status) error {
	data, err := json.Marshal(status)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.prefix+jobID, data, s.ttl).Err()
}

// Close implements Store. The Redis client is shared and closed by its owner.
func (s *RedisStore) Close() error {
	return nil
}
