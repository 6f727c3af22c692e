package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/quickcart/commerce-api/internal/api"
	"github.com/quickcart/commerce-api/internal/core/token"
	"github.com/quickcart/commerce-api/internal/infrastructure/config"
	"github.com/quickcart/commerce-api/internal/infrastructure/db/postgres"
	redisdb "github.com/quickcart/commerce-api/internal/infrastructure/db/redis"
	"github.com/quickcart/commerce-api/internal/infrastructure/queue"
	"github.com/quickcart/commerce-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// .env is a development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Connect(postgres.Config{DSN: cfg.Postgres.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer func() { _ = postgres.Close(db) }()

	// Redis is optional: without it the catalog simply runs uncached.
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, product cache disabled")
			rdb = nil
		} else {
			defer func() { _ = rdb.Close() }()
		}
	}

	hashPool := queue.NewHashPool(cfg.HashWorkers, log)
	hashPool.Start(ctx)

	tokens := token.NewManager(cfg.JWTSecret, cfg.TokenTTL)

	e := api.NewRouter(db, rdb, hashPool, tokens, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
