package batch

import (
	"context"
	"sync"
	"time"
)

// memoryEntry holds a stored status with its expiration time.
type memoryEntry struct {
	expiresAt time.Time
	status    Status
}

// MemoryStore is an in-memory status store with TTL-based expiration.
// A janitor goroutine evicts expired entries periodically.
type MemoryStore struct {
	items  map[string]memoryEntry
	ttl    time.Duration
	done   chan struct{}
	mu     sync.Mutex
	closed bool
}

// MemoryOption configures a MemoryStore.
type MemoryOption func(*MemoryStore)

// WithMemoryTTL overrides the default one-hour status lifetime.
func WithMemoryTTL(ttl time.Duration) MemoryOption {
	return func(s *MemoryStore) {
		s.ttl = ttl
	}
}

// NewMemoryStore creates a new in-memory status store.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		items: make(map[string]memoryEntry),
		ttl:   defaultStatusTTL,
		done:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}

	go s.janitor()
	return s
}

// Get retrieves a job status.
// Returns ErrNotFound if the job is unknown or its status has expired.
func (s *MemoryStore) Get(_ context.Context, jobID string) (Status, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[jobID]
	if !ok || time.Now().After(e.expiresAt) {
		delete(s.items, jobID)
		return Status{}, ErrNotFound
	}
	return e.status, nil
}

// Set stores a job status, refreshing its expiry.
func (s *MemoryStore) Set(_ context.Context, jobID string, status Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrNotStarted
	}

	s.items[jobID] = memoryEntry{
		expiresAt: time.Now().Add(s.ttl),
		status:    status,
	}
	return nil
}

// Close stops the janitor goroutine and drops all entries.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	close(s.done)
	s.items = make(map[string]memoryEntry)
	return nil
}

func (s *MemoryStore) janitor() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			now := time.Now()
			s.mu.Lock()
			for id, e := range s.items {
				if now.After(e.expiresAt) {
					delete(s.items, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
