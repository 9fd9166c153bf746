package batch

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/gyaneshwarchoudhary/Certificate-Launchpad/pkg/logger"
)

// SweeperConfig holds temp-file sweeper tunables.
// Embed this in your app config for env parsing with caarlos0/env.
type SweeperConfig struct {
	Schedule string        `env:"SWEEP_SCHEDULE" envDefault:"@every 10m"`
	MaxAge   time.Duration `env:"SWEEP_MAX_AGE" envDefault:"1h"`
}

// Sweeper periodically deletes aged files from a temp directory. It is a
// backstop against files leaked by crashed attempts and is safe to run
// alongside active jobs: only files older than MaxAge are touched, and
// active attempts never keep a file around that long.
type Sweeper struct {
	dir  string
	cfg  SweeperConfig
	cron *cron.Cron
	log  *slog.Logger
}

// NewSweeper creates a sweeper for dir. Pass nil log to disable logging.
func NewSweeper(dir string, cfg SweeperConfig, log *slog.Logger) *Sweeper {
	if log == nil {
		log = logger.NewNope()
	}
	return &Sweeper{dir: dir, cfg: cfg, log: log}
}

// Start schedules the sweep. Returns an error for an invalid cron spec.
func (s *Sweeper) Start() error {
	s.cron = cron.New()
	if _, err := s.cron.AddFunc(s.cfg.Schedule, func() {
		deleted, err := s.Sweep()
		if err != nil {
			s.log.Warn("temp sweep failed", slog.String("error", err.Error()))
			return
		}
		if deleted > 0 {
			s.log.Info("temp sweep completed", slog.Int("deleted", deleted))
		}
	}); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop halts the schedule, waiting for an in-flight sweep to finish.
func (s *Sweeper) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}

// Sweep deletes regular files older than MaxAge and returns how many went.
// Deletion errors are logged and skipped; a missing directory is not an error.
func (s *Sweeper) Sweep() (int, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, err
	}

	cutoff := time.Now().Add(-s.cfg.MaxAge)
	deleted := 0

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}

		path := filepath.Join(s.dir, entry.Name())
		if err := os.Remove(path); err != nil {
			s.log.Warn("could not delete aged temp file",
				slog.String("path", path),
				slog.String("error", err.Error()),
			)
			continue
		}
		deleted++
	}

	return deleted, nil
}
