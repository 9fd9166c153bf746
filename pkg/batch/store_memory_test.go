package batch_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gyaneshwarchoudhary/Certificate-Launchpad/pkg/batch"
)

func TestMemoryStore(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrNotFound for unknown jobs", func(t *testing.T) {
		t.Parallel()

		s := batch.NewMemoryStore()
		defer s.Close()

		_, err := s.Get(context.Background(), "missing")
		require.ErrorIs(t, err, batch.ErrNotFound)
	})

	t.Run("stores and retrieves a status", func(t *testing.T) {
		t.Parallel()

		s := batch.NewMemoryStore()
		defer s.Close()

		ctx := context.Background()
		want := batch.Status{
			State:   batch.StateSucceeded,
			Summary: &batch.Summary{Successes: []string{"alice@x.com"}},
		}
		require.NoError(t, s.Set(ctx, "job-1", want))

		got, err := s.Get(ctx, "job-1")
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("overwrites an existing status", func(t *testing.T) {
		t.Parallel()

		s := batch.NewMemoryStore()
		defer s.Close()

		ctx := context.Background()
		require.NoError(t, s.Set(ctx, "job-1", batch.Status{State: batch.StatePending}))
		require.NoError(t, s.Set(ctx, "job-1", batch.Status{State: batch.StateRunning}))

		got, err := s.Get(ctx, "job-1")
		require.NoError(t, err)
		require.Equal(t, batch.StateRunning, got.State)
	})

	t.Run("expires statuses after the TTL", func(t *testing.T) {
		t.Parallel()

		s := batch.NewMemoryStore(batch.WithMemoryTTL(20 * time.Millisecond))
		defer s.Close()

		ctx := context.Background()
		require.NoError(t, s.Set(ctx, "job-1", batch.Status{State: batch.StateRunning}))

		_, err := s.Get(ctx, "job-1")
		require.NoError(t, err)

		require.Eventually(t, func() bool {
			_, err := s.Get(ctx, "job-1")
			return err != nil
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("rejects writes after close", func(t *testing.T) {
		t.Parallel()

		s := batch.NewMemoryStore()
		require.NoError(t, s.Close())
		require.Error(t, s.Set(context.Background(), "job-1", batch.Status{State: batch.StatePending}))
	})
}
