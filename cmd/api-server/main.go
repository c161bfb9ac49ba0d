package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"cinehub/database"
	"cinehub/internal/cache"
	"cinehub/internal/config"
	"cinehub/internal/http-api/handler"
	"cinehub/internal/http-api/middleware"
	"cinehub/internal/http-api/repository"
	"cinehub/internal/http-api/service"
	"cinehub/internal/jobs"
	"cinehub/internal/seed"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("could not load config", "error", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}

	if cfg.SeedOnStart {
		if err := seed.Run(context.Background(), db, logger); err != nil {
			return fmt.Errorf("seed database: %w", err)
		}
	}

	// Redis is optional; without it the title cache degrades to a no-op
	// and every read goes to Postgres.
	var titles *cache.TitleCache
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.Warn("redis unreachable, title cache disabled", "addr", cfg.RedisAddr, "error", err)
	} else {
		titles = cache.New(rdb, cfg.CacheTTL, logger)
	}

	movieRepo := repository.NewMovieRepo(db)
	seriesRepo := repository.NewSeriesRepo(db)
	episodeRepo := repository.NewEpisodeRepository(db)
	posterRepo := repository.NewPosterRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)
	userRepo := repository.NewUserRepository(db)
	tokenRepo := repository.NewRefreshTokenRepository(db)
	ratingRepo := repository.NewRatingRepository(db)

	svc := handler.Services{
		Auth:      service.NewAuthService(userRepo, tokenRepo, cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL),
		Movies:    service.NewMovieService(movieRepo, titles),
		Series:    service.NewSeriesService(seriesRepo, titles),
		Episodes:  service.NewEpisodeService(episodeRepo, seriesRepo, titles),
		Posters:   service.NewPosterService(posterRepo, movieRepo, seriesRepo, titles),
		Reviews:   service.NewReviewService(reviewRepo, movieRepo, seriesRepo, titles),
		Favorites: service.NewFavoriteService(favoriteRepo, movieRepo, seriesRepo),
	}

	ratingJob := jobs.NewRatingJob(ratingRepo, titles, logger, cfg.RatingInterval)
	ratingJob.Start()

	limiter := middleware.NewClientRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	router := handler.NewRouter(cfg, logger, svc, limiter)
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.GoEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		ratingJob.Stop()
		limiter.Stop()
		return err
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}

	// waits for an in-flight aggregation run to finish
	ratingJob.Stop()
	limiter.Stop()

	return nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
