// Copyright (c) 2024 cblomart
// Licensed under the MIT License

package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "radioai/docs"
	"radioai/internal/aggregator"
	"radioai/internal/ai"
	"radioai/internal/api"
	"radioai/internal/cache"
	"radioai/internal/config"
	"radioai/internal/narrator"
	"radioai/internal/notifications"
	"radioai/internal/poller"
	"radioai/internal/storage"
)

func main() {
	cfg := config.Load()
	logger := newLogger(cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("radioai stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := storage.NewStorage(cfg.Storage, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	if cfg.Storage.Seed {
		if err := storage.Seed(ctx, store, time.Now()); err != nil {
			return err
		}
	}

	blobs, closeBlobs, err := newBlobStore(ctx, cfg.Cache)
	if err != nil {
		return err
	}
	defer closeBlobs()

	content := ai.NewService(cfg.AI, logger)
	if !content.Configured() {
		logger.Warn("no OpenAI API key configured, AI features answer with fallbacks")
	}

	deps := api.Deps{
		Store:    store,
		Content:  content,
		Narrator: narrator.New(content, blobs, cfg.Cache.AudioTTL, logger),
		Notifier: notifications.NewService(store),
		Logger:   logger,
	}

	if cfg.Ingest.Enabled {
		agg := aggregator.New(aggregator.Options{
			Categorizer:   content,
			FetchFullText: cfg.Ingest.FetchFullText,
			Logger:        logger,
		})
		backgroundPoller := poller.New(agg, store, cfg.Ingest.Sources, cfg.Ingest.PollInterval, logger)
		backgroundPoller.Start()
		defer backgroundPoller.Stop()
		deps.Poller = backgroundPoller

		logger.Info("feed ingestion enabled", "sources", len(cfg.Ingest.Sources), "interval", cfg.Ingest.PollInterval)
	}

	server := api.NewServer(deps, cfg)

	logger.Info("starting radioai server",
		"port", cfg.Port,
		"storage", cfg.Storage.Driver,
		"cache", cfg.Cache.Backend,
		"audio_ttl", cfg.Cache.AudioTTL)

	if err := server.StartWithContext(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logger.Info("shutdown complete")
	return nil
}

// newBlobStore picks the audio cache backend; the returned func releases it
func newBlobStore(ctx context.Context, cfg config.CacheConfig) (cache.BlobStore, func(), error) {
	if cfg.Backend != "redis" {
		return cache.NewMemoryBlobStore(cache.NewManager(cfg.AudioTTL)), func() {}, nil
	}

	store, err := cache.NewRedisBlobStore(ctx, cache.RedisOptions{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, nil, err
	}
	return store, func() { _ = store.Close() }, nil
}

func newLogger(level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}

	if strings.EqualFold(format, "json") {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
