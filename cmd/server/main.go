package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"tactics/internal/config"
	"tactics/internal/metrics"
	"tactics/internal/server"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	level := slog.LevelInfo
	if cfg.IsDev() {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	// Load YAML config (optional)
	yamlCfg, err := config.LoadYAMLConfig()
	if err != nil {
		log.Fatalf("Failed to load config file: %v", err)
	}
	if yamlCfg != nil {
		cfg.File = yamlCfg
		slog.Info("loaded config file", "dictionaries", len(yamlCfg.Dictionaries))
	}

	if cfg.MetricsEnabled {
		metrics.Init()
	}

	srv := server.New(cfg)
	if err := srv.RegisterRoutes(ctx); err != nil {
		log.Fatalf("Failed to register routes: %v", err)
	}

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("server error", "error", err)
		}
	}()

	slog.Info("server started", "addr", cfg.ServerAddr, "dictionary_mode", cfg.DictionaryMode)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	slog.Info("server exited")
}
