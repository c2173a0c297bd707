// Command api runs the FreelanceHub job board HTTP server.
//
// @title        FreelanceHub API
// @version      1.0
// @description  REST backend for a freelance job board: authentication and job postings.
// @BasePath     /api
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/freelancehub/job-board/internal/api"
	"github.com/freelancehub/job-board/internal/infrastructure/config"
	mongodb "github.com/freelancehub/job-board/internal/infrastructure/db/mongo"
	redisdb "github.com/freelancehub/job-board/internal/infrastructure/db/redis"
	"github.com/freelancehub/job-board/pkg/logger"
)

const shutdownGrace = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet; this is the one unstructured print.
		os.Stderr.WriteString("startup: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create mongo client")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	// The service keeps running when MongoDB is down: the health endpoint
	// reports the live connection state and data routes fail until the
	// database comes back.
	if err := mongodb.Ping(ctx, client, 5*time.Second); err != nil {
		log.Warn().Err(err).Msg("mongodb unreachable at startup")
	} else {
		log.Info().Str("database", cfg.Mongo.Database).Msg("mongodb connected")
		if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to ensure user indexes")
		}
	}

	rdb, err := redisConnect(ctx, cfg)
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, job-listing cache disabled")
	}
	if rdb != nil {
		defer rdb.Close()
	}

	e := api.NewRouter(api.Options{
		Client:    client,
		DB:        db,
		Redis:     rdb,
		JWTSecret: cfg.JWTSecret,
		ClientURL: cfg.ClientURL,
		Logger:    log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}

func redisConnect(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	if cfg.Redis.Addr == "" {
		return nil, nil
	}
	return redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
}
