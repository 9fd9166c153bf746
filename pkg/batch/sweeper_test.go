package batch_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gyaneshwarchoudhary/Certificate-Launchpad/pkg/batch"
)

func TestSweeper_Sweep(t *testing.T) {
	t.Parallel()

	t.Run("deletes only files past the age threshold", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		oldFile := filepath.Join(dir, "stale.pdf")
		newFile := filepath.Join(dir, "fresh.pdf")
		require.NoError(t, os.WriteFile(oldFile, []byte("old"), 0o644))
		require.NoError(t, os.WriteFile(newFile, []byte("new"), 0o644))

		stale := time.Now().Add(-2 * time.Hour)
		require.NoError(t, os.Chtimes(oldFile, stale, stale))

		s := batch.NewSweeper(dir, batch.SweeperConfig{MaxAge: time.Hour}, nil)
		deleted, err := s.Sweep()
		require.NoError(t, err)
		require.Equal(t, 1, deleted)

		require.NoFileExists(t, oldFile)
		require.FileExists(t, newFile)
	})

	t.Run("skips directories", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		sub := filepath.Join(dir, "keep")
		require.NoError(t, os.MkdirAll(sub, 0o755))
		stale := time.Now().Add(-2 * time.Hour)
		require.NoError(t, os.Chtimes(sub, stale, stale))

		s := batch.NewSweeper(dir, batch.SweeperConfig{MaxAge: time.Hour}, nil)
		deleted, err := s.Sweep()
		require.NoError(t, err)
		require.Zero(t, deleted)
		require.DirExists(t, sub)
	})

	t.Run("tolerates a missing directory", func(t *testing.T) {
		t.Parallel()

		s := batch.NewSweeper(filepath.Join(t.TempDir(), "gone"), batch.SweeperConfig{MaxAge: time.Hour}, nil)
		deleted, err := s.Sweep()
		require.NoError(t, err)
		require.Zero(t, deleted)
	})
}

func TestSweeper_StartRejectsBadSchedule(t *testing.T) {
	t.Parallel()

	s := batch.NewSweeper(t.TempDir(), batch.SweeperConfig{Schedule: "not-a-schedule", MaxAge: time.Hour}, nil)
	require.Error(t, s.Start())
}
