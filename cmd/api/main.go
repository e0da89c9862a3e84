package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/talentflow/talentflow-back/internal/assessment"
	"github.com/talentflow/talentflow-back/internal/config"
	httpserver "github.com/talentflow/talentflow-back/internal/http"
	"github.com/talentflow/talentflow-back/internal/http/handlers"
	"github.com/talentflow/talentflow-back/internal/http/middleware"
	"github.com/talentflow/talentflow-back/internal/kv"
	"github.com/talentflow/talentflow-back/internal/seed"
	"github.com/talentflow/talentflow-back/internal/storage"
)

func main() {
	logger := log.New(os.Stdout, "[talentflow] ", log.LstdFlags|log.LUTC|log.Lmicroseconds)
	if err := config.LoadDotEnv(".env", ".env.local"); err != nil {
		logger.Printf("failed loading .env files: %v", err)
	}
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, storeCloser := setupStore(ctx, cfg, logger)
	defer storeCloser()

	service := storage.NewService(store)
	if cfg.SeedOnStart {
		if err := service.SeedIfEmpty(ctx, seed.Dataset()); err != nil {
			logger.Printf("seeding failed: %v", err)
		}
	}

	api := handlers.NewAPI(handlers.Dependencies{
		Storage:     service,
		Validator:   assessment.NewValidator(),
		SeedData:    seed.Dataset,
		FailureRate: cfg.ChaosFailureRate,
	})

	handler := httpserver.NewRouter(httpserver.RouterDependencies{
		API:            api,
		Logger:         logger,
		AuthToken:      cfg.AuthToken,
		CORSOrigins:    cfg.CORSAllowedOrigins,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		Chaos: middleware.ChaosConfig{
			FailureRate: cfg.ChaosFailureRate,
			MinLatency:  time.Duration(cfg.ChaosMinLatencyMS) * time.Millisecond,
			MaxLatency:  time.Duration(cfg.ChaosMaxLatencyMS) * time.Millisecond,
		},
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		logger.Printf("api listening on :%s", cfg.Port)
		errChan <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logger.Printf("shutdown signal received")
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Printf("server failed: %v", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	}
}

// setupStore picks the key-value backend: Postgres, then Redis, then the
// local JSON file, falling back to memory when a configured backend fails
// to initialize.
func setupStore(ctx context.Context, cfg config.Config, logger *log.Logger) (kv.Store, func()) {
	if cfg.DatabaseURL != "" {
		pgStore, err := kv.NewPostgresStore(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Printf("failed to initialize postgres store, fallback to memory: %v", err)
			return kv.NewMemoryStore(), func() {}
		}
		logger.Printf("postgres store initialized")
		return pgStore, pgStore.Close
	}

	if cfg.RedisAddr != "" {
		redisStore, err := kv.NewRedisStore(ctx, kv.RedisConfig{
			Addr:      cfg.RedisAddr,
			Password:  cfg.RedisPassword,
			DB:        cfg.RedisDB,
			Namespace: cfg.RedisNamespace,
		})
		if err != nil {
			logger.Printf("failed to initialize redis store, fallback to memory: %v", err)
			return kv.NewMemoryStore(), func() {}
		}
		logger.Printf("redis store initialized")
		return redisStore, func() {
			_ = redisStore.Close()
		}
	}

	if cfg.DataFile != "" {
		fileStore, err := kv.NewFileStore(cfg.DataFile)
		if err != nil {
			logger.Printf("failed to open data file, fallback to memory: %v", err)
			return kv.NewMemoryStore(), func() {}
		}
		logger.Printf("file store initialized at %s", cfg.DataFile)
		return fileStore, func() {}
	}

	logger.Printf("no storage backend configured, using in-memory store")
	return kv.NewMemoryStore(), func() {}
}
