package store

import (
	"context"

	"github.com/google/uuid"

	"vocabcoach/internal/domain"
)

// VocabularyStore defines the interface for word persistence.
// The grading path only ever reads from this store; writes come from the
// word-management handlers.
type VocabularyStore interface {
	// Create saves a new word to the store.
	// Returns validation errors from the domain Word if data is invalid.
	// Returns ErrTermExists if a word with the same normalized term exists.
	Create(ctx context.Context, word *domain.Word) error

	// GetByID retrieves a word by its unique ID.
	// Returns ErrWordNotFound if the word does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Word, error)

	// ListWords retrieves all words ordered by creation time ascending.
	// Returns an empty slice when the vocabulary is empty.
	ListWords(ctx context.Context) ([]*domain.Word, error)

	// FindByTerm retrieves a word by its term, compared case-insensitively
	// after trimming. Returns ErrWordNotFound if no word matches.
	FindByTerm(ctx context.Context, term string) (*domain.Word, error)

	// Delete removes a word from the store by its ID.
	// Returns ErrWordNotFound if the word does not exist.
	// Practice history referencing the word is kept; sessions hold a weak
	// reference only.
	Delete(ctx context.Context, id uuid.UUID) error
}
