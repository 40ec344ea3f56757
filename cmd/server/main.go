package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/paydash/internal/adapter/http"
	"github.com/iho/paydash/internal/adapter/http/handler"
	redisRepo "github.com/iho/paydash/internal/adapter/repository/redis"
	"github.com/iho/paydash/internal/adapter/stripe"
	"github.com/iho/paydash/internal/infrastructure/config"
	"github.com/iho/paydash/internal/infrastructure/logger"
	"github.com/iho/paydash/internal/infrastructure/metrics"
	"github.com/iho/paydash/internal/infrastructure/redis"
	"github.com/iho/paydash/internal/infrastructure/secret"
	"github.com/iho/paydash/internal/usecase"
)

func main() {
	// Load .env if present, real environment wins
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup logger
	appLogger := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	log.Logger = appLogger

	ctx := context.Background()

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	// Credential source: direct key from the environment, otherwise the
	// blob store
	var credentials usecase.CredentialSource
	if cfg.StripeAPIKey != "" {
		credentials = secret.NewStaticSource(cfg.StripeAPIKey)
		log.Info().Msg("using credential from environment")
	} else {
		credentials = secret.NewGCSSource(cfg.SecretBucket, cfg.SecretObject)
		log.Info().
			Str("bucket", cfg.SecretBucket).
			Str("object", cfg.SecretObject).
			Msg("using credential from blob store")
	}

	// Initialize adapters
	stripeClient := stripe.NewClient(stripe.Config{
		BaseURL:         cfg.StripeBaseURL,
		Timeout:         cfg.StripeTimeout,
		PageLimit:       cfg.StripePageLimit,
		RetryMaxElapsed: cfg.StripeRetryMaxElapsed,
	})
	datasetCache := redisRepo.NewDatasetCache(redisClient)
	idGen := redisRepo.NewULIDGenerator()

	// Initialize use cases
	reportUC := usecase.NewReportUseCase(
		stripeClient,
		stripeClient,
		credentials,
		datasetCache,
		idGen,
		metrics.New(),
		cfg.DatasetTTL,
	)

	// Initialize handlers
	reportHandler := handler.NewReportHandler(reportUC)
	healthHandler := handler.NewHealthHandler(redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		ReportHandler: reportHandler,
		HealthHandler: healthHandler,
		Logger:        appLogger,
	})

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
		IdleTimeout:  cfg.HTTPIdleTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
