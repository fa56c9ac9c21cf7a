package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/campusnet/social-api/internal/api"
	"github.com/campusnet/social-api/internal/core/ports"
	"github.com/campusnet/social-api/internal/infrastructure/config"
	"github.com/campusnet/social-api/internal/infrastructure/db/mongo"
	"github.com/campusnet/social-api/internal/infrastructure/db/redis"
	"github.com/campusnet/social-api/internal/infrastructure/storage"
	"github.com/campusnet/social-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title           Campus Social API
// @version         1.0
// @description     REST backend for a campus social network: accounts, posts, likes, follows, and comments.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	images, err := newImageStore(ctx, cfg.Storage)
	if err != nil {
		log.Fatal().Err(err).Msg("image store initialisation failed")
	}

	e, err := api.NewRouter(cfg, db, rdb, images, log)
	if err != nil {
		log.Fatal().Err(err).Msg("router initialisation failed")
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}

// newImageStore picks S3 when a bucket is configured, local disk otherwise.
func newImageStore(ctx context.Context, cfg config.StorageConfig) (ports.ImageStore, error) {
	if cfg.S3Bucket != "" {
		return storage.NewS3ImageStore(ctx, storage.S3Config{
			Bucket:        cfg.S3Bucket,
			Region:        cfg.S3Region,
			Endpoint:      cfg.S3Endpoint,
			AccessKey:     cfg.S3AccessKey,
			SecretKey:     cfg.S3SecretKey,
			PublicBaseURL: cfg.PublicBaseURL,
		})
	}
	return storage.NewLocalImageStore(cfg.UploadDir, "/uploads")
}
