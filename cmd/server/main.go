package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"

	"inkwell-post-service/internal/auth"
	redis_cache "inkwell-post-service/internal/cache/redis"
	"inkwell-post-service/internal/config"
	delivery_http "inkwell-post-service/internal/delivery/http"
	auth_http "inkwell-post-service/internal/delivery/http/auth"
	post_http "inkwell-post-service/internal/delivery/http/post"
	metrics_server "inkwell-post-service/internal/delivery/metrics"
	"inkwell-post-service/internal/logger"
	prometheus_metrics "inkwell-post-service/internal/metrics/prometheus"
	"inkwell-post-service/internal/middleware"
	author_postgres "inkwell-post-service/internal/repository/author/postgres"
	post_postgres "inkwell-post-service/internal/repository/post/postgres"
	auth_service "inkwell-post-service/internal/service/auth"
	post_service "inkwell-post-service/internal/service/post"
)

func main() {
	cfg := config.MustLoad()
	dsn := fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.Database.Username,
		cfg.Database.Password,
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.DbName)
	ctx := context.Background()
	log := logger.New(cfg.Env)

	if err := runMigrations(cfg.Database.MigrationsPath, dsn); err != nil {
		log.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Error("Failed to parse postgres poolConfig", slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("Failed to create postgres pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	log.Info("Connecting to Redis",
		slog.String("address", cfg.Redis.Address),
		slog.Int("port", cfg.Redis.Port),
		slog.Int("db", cfg.Redis.DB))
	redisClient, err := redis_cache.NewClient(cfg.Redis, log)
	if err != nil {
		log.Error("Failed to create Redis client", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", slog.String("error", err.Error()))
		}
	}()

	metrics := prometheus_metrics.NewPrometheusMetricsProvider()

	metrics.SetServiceHealth(true)

	postCache := redis_cache.NewPostCache(redisClient, log, cfg.Cache.AllPostsTTL)

	postRepo := post_postgres.NewPostRepository(pool, log, metrics)
	authorRepo := author_postgres.NewAuthorRepository(pool, log)

	tokenManager := auth.NewTokenManager(cfg.JWT)
	authService := auth_service.NewAuthService(authorRepo, tokenManager, log, metrics)

	originalPostService := post_service.NewPostService(postRepo, authorRepo, log, metrics)

	postService := post_service.NewPostServiceCacheDecorator(
		originalPostService,
		postCache,
		log,
		metrics,
	)

	postHTTPApi := post_http.NewPostHTTPService(postService, log)
	authHTTPApi := auth_http.NewAuthHTTPService(authService, log)
	authMiddleware := middleware.NewAuth(tokenManager, log)

	httpServer := delivery_http.NewServer(
		postHTTPApi,
		authHTTPApi,
		authMiddleware,
		cfg.HTTPServer.Address,
		cfg.HTTPServer.Port,
		log,
		metrics,
	)

	metricsServer := metrics_server.NewMetricsServer(cfg.Prometheus.Address, cfg.Prometheus.Port, log)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	done := make(chan bool, 1)
	metricsDone := make(chan bool, 1)

	go func() {
		if err := httpServer.Run(); err != nil {
			log.Error("HTTP server error", slog.String("error", err.Error()))
		}
		done <- true
	}()

	go func() {
		if err := metricsServer.Run(); err != nil {
			log.Error("Metrics server error", slog.String("error", err.Error()))
		}
		metricsDone <- true
	}()

	<-quit
	log.Info("Shutting down servers...")

	metrics.SetServiceHealth(false)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", slog.String("error", err.Error()))
	}

	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Metrics server shutdown error", slog.String("error", err.Error()))
	}

	<-done
	<-metricsDone

	log.Info("Server exited")
}

func runMigrations(migrationsPath, dsn string) error {
	m, err := migrate.New(fmt.Sprintf("file://%s", migrationsPath), dsn)
	if err != nil {
		return err
	}
	defer func() {
		_, _ = m.Close()
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}
