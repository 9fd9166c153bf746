// Command server runs the certificate generation and delivery service.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/gyaneshwarchoudhary/Certificate-Launchpad/internal/config"
	"github.com/gyaneshwarchoudhary/Certificate-Launchpad/internal/server"
	"github.com/gyaneshwarchoudhary/Certificate-Launchpad/pkg/batch"
	"github.com/gyaneshwarchoudhary/Certificate-Launchpad/pkg/certificate"
	"github.com/gyaneshwarchoudhary/Certificate-Launchpad/pkg/logger"
)

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log := logger.NewWithSentry(cfg.Sentry)

	if err := run(cfg, log); err != nil {
		log.Error("server exited with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg config.Config, log *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := newStatusStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	renderer := certificate.NewRenderer(cfg.CertDir)
	processor := batch.NewProcessor(
		cfg.Batch,
		store,
		renderer,
		batch.DefaultSenderFactory(cfg.Providers),
		log,
	)
	if err := processor.Start(ctx); err != nil {
		return err
	}
	defer processor.Stop()

	for _, dir := range []string{cfg.UploadDir, cfg.CertDir} {
		sweeper := batch.NewSweeper(dir, cfg.Sweeper, log)
		if err := sweeper.Start(); err != nil {
			return err
		}
		defer sweeper.Stop()
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           server.New(processor, cfg.UploadDir, log).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening", slog.String("addr", cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newStatusStore picks the Redis status store when REDIS_URL is set,
// falling back to the in-memory store for single-instance deployments.
func newStatusStore(cfg config.Config) (batch.Store, error) {
	if cfg.RedisURL == "" {
		return batch.NewMemoryStore(), nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, errors.Join(errors.New("invalid REDIS_URL"), err)
	}
	return batch.NewRedisStore(redis.NewClient(opts)), nil
}
