// Package config assembles application configuration from the environment.
// It is constructed once at process start and passed explicitly to every
// component that needs it; nothing reads the environment at runtime.
package config

import (
	"fmt"

	env "github.com/caarlos0/env/v11"

	"github.com/gyaneshwarchoudhary/Certificate-Launchpad/pkg/batch"
	"github.com/gyaneshwarchoudhary/Certificate-Launchpad/pkg/logger"
	"github.com/gyaneshwarchoudhary/Certificate-Launchpad/pkg/mailer/provider"
)

// Config is the process-wide configuration.
type Config struct {
	Addr      string `env:"SERVER_ADDR" envDefault:":8080"`
	UploadDir string `env:"UPLOAD_DIR" envDefault:"uploads"`
	CertDir   string `env:"CERT_DIR" envDefault:"certificates"`

	// RedisURL switches the job status store from in-memory to Redis.
	RedisURL string `env:"REDIS_URL"`

	Batch     batch.Config
	Sweeper   batch.SweeperConfig
	Providers provider.Config
	Sentry    logger.SentryConfig
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}
	return cfg, nil
}
