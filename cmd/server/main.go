// Package main implements the entry point for the vocabcoach server,
// which manages a personal vocabulary, grades practice sentences with an
// LLM and serves flashcard review sessions.
package main

import (
	"context"
	"fmt"
	"log"

	"vocabcoach/internal/config"
	"vocabcoach/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}

// run loads configuration, wires the application and serves until a
// shutdown signal arrives. Split from main so the exit path stays testable.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)
	appLogger.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName,
		"credentials_present", cfg.LLM.GeminiAPIKey != "")

	ctx := context.Background()

	app, err := newApplication(ctx, cfg, appLogger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	defer app.cleanup()

	if err := app.runMigrations(ctx); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}
