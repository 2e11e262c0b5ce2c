package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Word-specific validation errors
var (
	// ErrWordIDEmpty is returned when a word ID is empty or nil.
	ErrWordIDEmpty = errors.New("word ID cannot be empty")

	// ErrWordTermEmpty is returned when a word's term is empty after trimming.
	ErrWordTermEmpty = errors.New("word term cannot be empty")

	// ErrWordDefinitionEmpty is returned when a word has no definitions.
	ErrWordDefinitionEmpty = errors.New("word definitions cannot be empty")
)

// Word represents a single vocabulary entry owned by the user.
// The term is the canonical spelling and doubles as the case-insensitive
// lookup key used by the practice flow.
type Word struct {
	ID                uuid.UUID `json:"id"`
	Term              string    `json:"term"`
	EnglishDefinition string    `json:"english_definition"`
	NativeDefinition  string    `json:"native_definition"`
	Pronunciation     string    `json:"pronunciation"`
	SampleSentence    string    `json:"sample_sentence"`
	UsageContext      string    `json:"usage_context,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// NewWord creates a new Word with a generated ID and creation timestamps.
// Returns an error if validation fails.
func NewWord(
	term, englishDefinition, nativeDefinition, pronunciation, sampleSentence, usageContext string,
) (*Word, error) {
	now := time.Now().UTC()
	word := &Word{
		ID:                uuid.New(),
		Term:              strings.TrimSpace(term),
		EnglishDefinition: strings.TrimSpace(englishDefinition),
		NativeDefinition:  strings.TrimSpace(nativeDefinition),
		Pronunciation:     strings.TrimSpace(pronunciation),
		SampleSentence:    strings.TrimSpace(sampleSentence),
		UsageContext:      strings.TrimSpace(usageContext),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := word.Validate(); err != nil {
		return nil, err
	}

	return word, nil
}

// Validate checks if the Word has valid data.
// Returns an error if any field fails validation.
func (w *Word) Validate() error {
	if w.ID == uuid.Nil {
		return ErrWordIDEmpty
	}

	if strings.TrimSpace(w.Term) == "" {
		return ErrWordTermEmpty
	}

	if strings.TrimSpace(w.EnglishDefinition) == "" && strings.TrimSpace(w.NativeDefinition) == "" {
		return ErrWordDefinitionEmpty
	}

	return nil
}

// NormalizedTerm returns the lower-cased, trimmed form of the term.
// All term lookups compare normalized terms, so "Ephemeral" and
// "ephemeral" refer to the same word.
func (w *Word) NormalizedTerm() string {
	return NormalizeTerm(w.Term)
}

// NormalizeTerm lower-cases and trims a raw term for case-insensitive matching.
func NormalizeTerm(term string) string {
	return strings.ToLower(strings.TrimSpace(term))
}
