package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/examfinder/examfinder-backend/internal/config"
	"github.com/examfinder/examfinder-backend/internal/handler"
	"github.com/examfinder/examfinder-backend/internal/logger"
	"github.com/examfinder/examfinder-backend/internal/model"
	"github.com/examfinder/examfinder-backend/internal/router"
	"github.com/examfinder/examfinder-backend/internal/service"
	"github.com/examfinder/examfinder-backend/internal/store"
	"github.com/examfinder/examfinder-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("data_source", cfg.DataSource).
		Msg("Starting Exam Finder Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	// ─── Initialize Data Source ────────────────────────────────────────
	var source store.Source
	switch cfg.DataSource {
	case config.DataSourceSnapshot:
		snapshotStore, err := store.NewSnapshotStore(cfg.SnapshotPath, log)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.SnapshotPath).Msg("Failed to load snapshot")
		}
		source = snapshotStore
	case config.DataSourceLive:
		source = store.NewLiveStore(cfg.DataDir, log)
	default:
		log.Fatal().Str("data_source", cfg.DataSource).Msg("Unknown data source")
	}

	// ─── Initialize Service and Handlers ───────────────────────────────
	searchService := service.NewSearchService(source, log)
	handlers := &router.Handlers{
		Search: handler.NewSearchHandler(searchService),
	}

	log.Info().
		Str("qualifications", strings.Join(model.Qualifications, ", ")).
		Msg("Available qualifications")

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(handlers, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
