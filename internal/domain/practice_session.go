package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// UnknownWordID is the sentinel stored in PracticeSession.WordID when the
// practiced term does not match any word in the vocabulary. Using a sentinel
// instead of an empty value keeps "no match" explicit in the history.
const UnknownWordID = "unknown"

// PracticeSession-specific validation errors
var (
	// ErrSessionIDEmpty is returned when a practice session ID is empty or nil.
	ErrSessionIDEmpty = errors.New("practice session ID cannot be empty")

	// ErrSessionWordIDEmpty is returned when a session's word reference is empty.
	ErrSessionWordIDEmpty = errors.New("practice session word ID cannot be empty")

	// ErrSessionTermEmpty is returned when a session's word term is empty.
	ErrSessionTermEmpty = errors.New("practice session word term cannot be empty")

	// ErrSessionSentenceEmpty is returned when a session's user sentence is empty.
	ErrSessionSentenceEmpty = errors.New("practice session sentence cannot be empty")
)

// PracticeSession is one graded sentence attempt. Sessions are created exactly
// once per submission and are never mutated or deleted afterwards; the practice
// log owns them as an append-only audit trail.
type PracticeSession struct {
	ID                uuid.UUID `json:"id"`
	WordID            string    `json:"word_id"`
	WordTerm          string    `json:"word_term"`
	UserSentence      string    `json:"user_sentence"`
	CorrectedSentence string    `json:"corrected_sentence"`
	BetterVersion     string    `json:"better_version"`
	Feedback          string    `json:"feedback"`
	IsCorrect         bool      `json:"is_correct"`
	CreatedAt         time.Time `json:"created_at"`
}

// NewPracticeSession creates a graded session with a fresh ID and timestamp.
// wordID is either the matched word's UUID string or UnknownWordID.
// Returns an error if validation fails.
func NewPracticeSession(
	wordID, wordTerm, userSentence, correctedSentence, betterVersion, feedback string,
	isCorrect bool,
) (*PracticeSession, error) {
	session := &PracticeSession{
		ID:                uuid.New(),
		WordID:            wordID,
		WordTerm:          wordTerm,
		UserSentence:      userSentence,
		CorrectedSentence: correctedSentence,
		BetterVersion:     betterVersion,
		Feedback:          feedback,
		IsCorrect:         isCorrect,
		CreatedAt:         time.Now().UTC(),
	}

	if err := session.Validate(); err != nil {
		return nil, err
	}

	return session, nil
}

// Validate checks if the PracticeSession has valid data.
// Returns an error if any field fails validation.
func (s *PracticeSession) Validate() error {
	if s.ID == uuid.Nil {
		return ErrSessionIDEmpty
	}

	if s.WordID == "" {
		return ErrSessionWordIDEmpty
	}

	if strings.TrimSpace(s.WordTerm) == "" {
		return ErrSessionTermEmpty
	}

	if strings.TrimSpace(s.UserSentence) == "" {
		return ErrSessionSentenceEmpty
	}

	return nil
}

// MatchedWord reports whether the session was graded against a word that
// existed in the vocabulary at submission time.
func (s *PracticeSession) MatchedWord() bool {
	return s.WordID != UnknownWordID
}
