package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"vocabcoach/internal/domain"
	"vocabcoach/internal/platform/logger"
	"vocabcoach/internal/store"
)

// PracticeLogStore implements the store.PracticeLog interface using a
// PostgreSQL database. The practice_sessions table is insert-only; no
// update or delete statements exist anywhere in this package.
type PracticeLogStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPracticeLogStore creates a new PostgreSQL implementation of PracticeLog.
// If logger is nil, the default logger is used.
func NewPracticeLogStore(db store.DBTX, log *slog.Logger) *PracticeLogStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if log == nil {
		log = slog.Default()
	}

	return &PracticeLogStore{
		db:     db,
		logger: log.With(slog.String("component", "practice_log_store")),
	}
}

// Ensure PracticeLogStore implements store.PracticeLog at compile time.
var _ store.PracticeLog = (*PracticeLogStore)(nil)

// Append implements store.PracticeLog.Append.
// Returns store.ErrDuplicateSession when the session ID is already recorded;
// the primary key makes the append atomic, so a failed insert writes nothing.
func (s *PracticeLogStore) Append(ctx context.Context, session *domain.PracticeSession) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := session.Validate(); err != nil {
		log.Warn("session validation failed during append",
			slog.String("error", err.Error()),
			slog.String("session_id", session.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO practice_sessions (id, word_id, word_term, user_sentence,
			corrected_sentence, better_version, feedback, is_correct, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		session.ID,
		session.WordID,
		session.WordTerm,
		session.UserSentence,
		session.CorrectedSentence,
		session.BetterVersion,
		session.Feedback,
		session.IsCorrect,
		session.CreatedAt,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate session ID on append",
				slog.String("session_id", session.ID.String()))
			return fmt.Errorf("%w: %s", store.ErrDuplicateSession, session.ID)
		}

		log.Error("failed to append practice session",
			slog.String("error", err.Error()),
			slog.String("session_id", session.ID.String()))
		return MapError(err)
	}

	log.Info("practice session recorded",
		slog.String("session_id", session.ID.String()),
		slog.String("word_term", session.WordTerm),
		slog.Bool("is_correct", session.IsCorrect))
	return nil
}

// ListAll implements store.PracticeLog.ListAll.
// Sessions are returned ordered by creation time ascending.
func (s *PracticeLogStore) ListAll(ctx context.Context) ([]*domain.PracticeSession, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, word_id, word_term, user_sentence, corrected_sentence,
			better_version, feedback, is_correct, created_at
		FROM practice_sessions
		ORDER BY created_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list practice sessions", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	sessions := make([]*domain.PracticeSession, 0)
	for rows.Next() {
		var session domain.PracticeSession
		err := rows.Scan(
			&session.ID,
			&session.WordID,
			&session.WordTerm,
			&session.UserSentence,
			&session.CorrectedSentence,
			&session.BetterVersion,
			&session.Feedback,
			&session.IsCorrect,
			&session.CreatedAt,
		)
		if err != nil {
			return nil, MapError(err)
		}
		sessions = append(sessions, &session)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return sessions, nil
}
