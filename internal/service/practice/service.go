package practice

import (
	"context"
	"errors"

	"vocabcoach/internal/domain"
)

// Submission is one sentence-grading request from the user.
type Submission struct {
	// TargetWord is the word the user intends to practice, as typed.
	TargetWord string `json:"target_word"`
	// Sentence is the user's attempt at using the word.
	Sentence string `json:"sentence"`
}

// Result is the outcome of a successful grading call.
type Result struct {
	// Session is the graded, already-recorded practice session.
	Session *domain.PracticeSession
	// NoMatchWarning is set when the target word was not found in the
	// vocabulary. Grading still succeeded with generic context; the
	// warning is informational, not an error.
	NoMatchWarning bool
}

// Service grades user sentences against the vocabulary and records each
// graded attempt in the practice log.
type Service interface {
	// GradeSentence validates the submission, grades it with the language
	// model and appends the resulting session to the practice log.
	//
	// Returns:
	//   - (*Result, nil): the graded session, recorded in the log
	//   - (nil, ErrMissingCredentials): no API credential is configured;
	//     checked before any lookup or network call
	//   - (nil, error wrapping grading.ErrEmptyInput): blank word or sentence
	//   - (nil, error wrapping grading.ErrGatewayFailure): the language
	//     model call failed or returned an unusable response; nothing was
	//     logged and the user must resubmit explicitly
	//   - (nil, ErrSubmissionSuperseded): a newer submission started while
	//     this one was in flight; the stale result was discarded unlogged
	//
	// Exactly one log append happens on success; none on any failure path.
	GradeSentence(ctx context.Context, sub Submission) (*Result, error)

	// History returns every recorded practice session in creation order.
	History(ctx context.Context) ([]*domain.PracticeSession, error)
}

// Common error types for the practice service.
var (
	// ErrMissingCredentials indicates that no language-model credential is
	// configured. Surfaced before any network call is attempted.
	ErrMissingCredentials = errors.New("missing language model credentials")

	// ErrSubmissionSuperseded indicates that a newer submission was started
	// while this one was waiting on the language model. The stale result is
	// discarded rather than applied.
	ErrSubmissionSuperseded = errors.New("submission superseded by a newer one")
)
