package config

import (
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration.
type Config struct {
	// Stripe source
	StripeAPIKey          string        `env:"STRIPE_API_KEY"           envDefault:""`
	StripeBaseURL         string        `env:"STRIPE_BASE_URL"          envDefault:"https://api.stripe.com"`
	StripeTimeout         time.Duration `env:"STRIPE_TIMEOUT"           envDefault:"30s"`
	StripePageLimit       int           `env:"STRIPE_PAGE_LIMIT"        envDefault:"100"`
	StripeRetryMaxElapsed time.Duration `env:"STRIPE_RETRY_MAX_ELAPSED" envDefault:"10s"`

	// Credential blob store (used when STRIPE_API_KEY is empty)
	SecretBucket string `env:"SECRET_BUCKET" envDefault:""`
	SecretObject string `env:"SECRET_OBJECT" envDefault:"stripe_key"`

	// Redis
	RedisURL   string        `env:"REDIS_URL"   envDefault:"redis://localhost:6379"`
	DatasetTTL time.Duration `env:"DATASET_TTL" envDefault:"15m"`

	// HTTP Server
	HTTPPort            string        `env:"HTTP_PORT"             envDefault:"8080"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"30s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"120s"`
	HTTPIdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT"     envDefault:"60s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
