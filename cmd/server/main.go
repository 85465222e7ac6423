// Package main is the entry point for the taskdeck API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskdeck/internal/core/config"
	"taskdeck/internal/domain"
	"taskdeck/internal/domain/page"
	"taskdeck/internal/domain/typeahead"
	v1 "taskdeck/internal/infrastructure/http/v1"
	"taskdeck/internal/infrastructure/storage/memory"
	"taskdeck/internal/infrastructure/storage/postgres"
	"taskdeck/pkg/logger"
)

const version = "0.1.0"

func main() {
	cfg := config.FromEnv()

	log, err := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.Development,
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting taskdeck server")

	// --- Storage backend ---
	var store domain.Store
	backend := "memory"
	if cfg.DatabaseURL != "" {
		pool, err := postgres.NewPool(ctx, postgres.DefaultPoolConfig(cfg.DatabaseURL))
		if err != nil {
			log.Fatalw("failed to connect to database", "error", err)
		}
		if err := postgres.Migrate(ctx, pool); err != nil {
			log.Fatalw("failed to apply schema", "error", err)
		}
		pgStore, err := postgres.NewStore(pool)
		if err != nil {
			log.Fatalw("failed to initialize store", "error", err)
		}
		defer pgStore.Close()
		store = pgStore
		backend = "postgres"
		log.Info("database connection established")
	} else {
		store = memory.NewStore()
		log.Info("using in-memory store")
	}

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Store:     store,
		Logger:    log,
		APIPrefix: cfg.APIPrefix,
		Pagination: page.Config{
			DefaultLimit: cfg.Pagination.DefaultPageSize,
			MaxLimit:     cfg.Pagination.MaxPageSize,
		},
		Typeahead: typeahead.Config{
			DefaultCount: cfg.Typeahead.DefaultCount,
			MaxCount:     cfg.Typeahead.MaxCount,
		},
		Backend: backend,
		Version: version,
	})

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("server starting", "addr", cfg.HTTPAddr, "storage", backend)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalw("server forced to shutdown", "error", err)
	}

	log.Info("server stopped")
}
