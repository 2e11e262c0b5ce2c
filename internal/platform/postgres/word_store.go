package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"vocabcoach/internal/domain"
	"vocabcoach/internal/platform/logger"
	"vocabcoach/internal/store"
)

// WordStore implements the store.VocabularyStore interface using a
// PostgreSQL database as the storage backend.
type WordStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewWordStore creates a new PostgreSQL implementation of VocabularyStore.
// It accepts a database connection or transaction managed by the caller.
// If logger is nil, the default logger is used.
func NewWordStore(db store.DBTX, log *slog.Logger) *WordStore {
	if db == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("db cannot be nil")
	}

	if log == nil {
		log = slog.Default()
	}

	return &WordStore{
		db:     db,
		logger: log.With(slog.String("component", "word_store")),
	}
}

// Ensure WordStore implements store.VocabularyStore at compile time.
var _ store.VocabularyStore = (*WordStore)(nil)

// Create implements store.VocabularyStore.Create.
// Returns store.ErrTermExists when the normalized term is already taken.
func (s *WordStore) Create(ctx context.Context, word *domain.Word) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := word.Validate(); err != nil {
		log.Warn("word validation failed during create",
			slog.String("error", err.Error()),
			slog.String("word_id", word.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO words (id, term, english_definition, native_definition,
			pronunciation, sample_sentence, usage_context, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		word.ID,
		word.Term,
		word.EnglishDefinition,
		word.NativeDefinition,
		word.Pronunciation,
		word.SampleSentence,
		word.UsageContext,
		word.CreatedAt,
		word.UpdatedAt,
	)

	if err != nil {
		if IsUniqueViolation(err) {
			log.Warn("duplicate term during word creation",
				slog.String("term", word.Term))
			return fmt.Errorf("%w: %q", store.ErrTermExists, word.Term)
		}

		log.Error("failed to create word",
			slog.String("error", err.Error()),
			slog.String("word_id", word.ID.String()))
		return MapError(err)
	}

	log.Info("word created",
		slog.String("word_id", word.ID.String()),
		slog.String("term", word.Term))
	return nil
}

// GetByID implements store.VocabularyStore.GetByID.
// Returns store.ErrWordNotFound if the word does not exist.
func (s *WordStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := selectWordColumns + ` WHERE id = $1`

	word, err := scanWord(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(MapError(err), store.ErrNotFound) {
			return nil, store.ErrWordNotFound
		}
		log.Error("failed to get word by ID",
			slog.String("error", err.Error()),
			slog.String("word_id", id.String()))
		return nil, MapError(err)
	}

	return word, nil
}

// ListWords implements store.VocabularyStore.ListWords.
// Words are returned ordered by creation time ascending.
func (s *WordStore) ListWords(ctx context.Context) ([]*domain.Word, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := selectWordColumns + ` ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list words", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	words := make([]*domain.Word, 0)
	for rows.Next() {
		word, err := scanWord(rows)
		if err != nil {
			return nil, MapError(err)
		}
		words = append(words, word)
	}

	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return words, nil
}

// FindByTerm implements store.VocabularyStore.FindByTerm.
// Matching is case-insensitive on the trimmed term.
// Returns store.ErrWordNotFound if no word matches.
func (s *WordStore) FindByTerm(ctx context.Context, term string) (*domain.Word, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := selectWordColumns + ` WHERE lower(term) = $1`

	word, err := scanWord(s.db.QueryRowContext(ctx, query, domain.NormalizeTerm(term)))
	if err != nil {
		if errors.Is(MapError(err), store.ErrNotFound) {
			log.Debug("no word matches term", slog.String("term", term))
			return nil, store.ErrWordNotFound
		}
		log.Error("failed to find word by term",
			slog.String("error", err.Error()),
			slog.String("term", term))
		return nil, MapError(err)
	}

	return word, nil
}

// Delete implements store.VocabularyStore.Delete.
// Returns store.ErrWordNotFound if the word does not exist.
func (s *WordStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM words WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete word",
			slog.String("error", err.Error()),
			slog.String("word_id", id.String()))
		return MapError(err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return MapError(err)
	}
	if affected == 0 {
		return store.ErrWordNotFound
	}

	log.Info("word deleted", slog.String("word_id", id.String()))
	return nil
}

const selectWordColumns = `
	SELECT id, term, english_definition, native_definition,
		pronunciation, sample_sentence, usage_context, created_at, updated_at
	FROM words
`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanWord(row rowScanner) (*domain.Word, error) {
	var word domain.Word
	err := row.Scan(
		&word.ID,
		&word.Term,
		&word.EnglishDefinition,
		&word.NativeDefinition,
		&word.Pronunciation,
		&word.SampleSentence,
		&word.UsageContext,
		&word.CreatedAt,
		&word.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &word, nil
}
