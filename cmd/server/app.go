package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"vocabcoach/internal/config"
	"vocabcoach/internal/grading"
	"vocabcoach/internal/platform/gemini"
	"vocabcoach/internal/platform/postgres"
	"vocabcoach/internal/service/practice"
	"vocabcoach/internal/service/review"
	"vocabcoach/internal/store"
)

// application holds the wired dependencies of the running server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	vocabulary      store.VocabularyStore
	practiceLog     store.PracticeLog
	practiceService practice.Service
	reviewSessions  *review.SessionManager
}

// newApplication connects to the database and wires stores, the grading
// gateway and the services. The Gemini client is only constructed when a
// credential is configured; without one the practice service rejects
// submissions before ever needing a gateway.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
) (*application, error) {
	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	vocabulary := postgres.NewWordStore(db, logger)
	practiceLog := postgres.NewPracticeLogStore(db, logger)

	var grader grading.Grader = unconfiguredGrader{}
	if cfg.LLM.GeminiAPIKey != "" {
		grader, err = gemini.NewGrader(ctx, logger, cfg.LLM)
		if err != nil {
			closeErr := db.Close()
			if closeErr != nil {
				logger.Error("failed to close database", "error", closeErr)
			}
			return nil, fmt.Errorf("failed to create grader: %w", err)
		}
	}

	practiceService := practice.NewService(
		vocabulary,
		practiceLog,
		grader,
		cfg.LLM.GeminiAPIKey,
		logger,
	)

	return &application{
		config:          cfg,
		logger:          logger,
		db:              db,
		vocabulary:      vocabulary,
		practiceLog:     practiceLog,
		practiceService: practiceService,
		reviewSessions:  review.NewSessionManager(),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}

// unconfiguredGrader stands in when no API credential is set. The practice
// service gates on credentials first, so these methods are unreachable in
// practice; returning the gateway sentinel keeps behavior sane if that
// ordering ever changes.
type unconfiguredGrader struct{}

func (unconfiguredGrader) GradeSentence(
	context.Context,
	grading.GradeRequest,
) (*grading.GradeResult, error) {
	return nil, fmt.Errorf("%w: no credentials configured", grading.ErrGatewayFailure)
}
