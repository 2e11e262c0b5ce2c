// Package memory provides in-memory implementations of the store
// interfaces. They back the unit tests and let the library run without a
// database in single-user embedded setups.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"vocabcoach/internal/domain"
	"vocabcoach/internal/store"
)

// WordStore is a mutex-guarded in-memory VocabularyStore.
type WordStore struct {
	mu    sync.RWMutex
	words map[uuid.UUID]*domain.Word
}

// NewWordStore creates an empty in-memory word store.
func NewWordStore() *WordStore {
	return &WordStore{words: make(map[uuid.UUID]*domain.Word)}
}

// Ensure WordStore implements store.VocabularyStore at compile time.
var _ store.VocabularyStore = (*WordStore)(nil)

// Create implements store.VocabularyStore.Create.
func (s *WordStore) Create(_ context.Context, word *domain.Word) error {
	if err := word.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.words {
		if existing.NormalizedTerm() == word.NormalizedTerm() {
			return fmt.Errorf("%w: %q", store.ErrTermExists, word.Term)
		}
	}

	copied := *word
	s.words[word.ID] = &copied
	return nil
}

// GetByID implements store.VocabularyStore.GetByID.
func (s *WordStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Word, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	word, ok := s.words[id]
	if !ok {
		return nil, store.ErrWordNotFound
	}

	copied := *word
	return &copied, nil
}

// ListWords implements store.VocabularyStore.ListWords.
func (s *WordStore) ListWords(_ context.Context) ([]*domain.Word, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	words := make([]*domain.Word, 0, len(s.words))
	for _, word := range s.words {
		copied := *word
		words = append(words, &copied)
	}

	sort.Slice(words, func(i, j int) bool {
		return words[i].CreatedAt.Before(words[j].CreatedAt)
	})

	return words, nil
}

// FindByTerm implements store.VocabularyStore.FindByTerm.
func (s *WordStore) FindByTerm(_ context.Context, term string) (*domain.Word, error) {
	normalized := domain.NormalizeTerm(term)

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, word := range s.words {
		if word.NormalizedTerm() == normalized {
			copied := *word
			return &copied, nil
		}
	}

	return nil, store.ErrWordNotFound
}

// Delete implements store.VocabularyStore.Delete.
func (s *WordStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.words[id]; !ok {
		return store.ErrWordNotFound
	}

	delete(s.words, id)
	return nil
}
