package grading

import (
	"context"
	"strings"
)

// Grader defines the interface for grading a user's sentence with a language
// model. It is the boundary between the application core and the external
// LLM service, following the hexagonal architecture pattern: the practice
// service depends on this interface, never on a concrete provider.
type Grader interface {
	// GradeSentence submits one sentence for grading and returns the
	// normalized result. Implementations must make exactly one call to the
	// underlying model per invocation; failed calls are surfaced to the
	// caller rather than retried.
	//
	// Returns ErrGatewayFailure (or the ErrMalformedResponse variant) when
	// the model cannot be reached or returns an unusable response.
	GradeSentence(ctx context.Context, req GradeRequest) (*GradeResult, error)
}

// GradeRequest carries everything the model needs to grade one attempt.
type GradeRequest struct {
	// Word is the raw target word as the user typed it.
	Word string

	// DefinitionContext is supporting material for the word taken from the
	// vocabulary (definitions, sample sentence). Empty when the word was not
	// found; the model then checks grammar generally.
	DefinitionContext string

	// UserSentence is the sentence the user wrote using the word.
	UserSentence string
}

// GradeResult is the normalized grading outcome.
// All fields are required; a response missing any of them is malformed.
type GradeResult struct {
	CorrectedSentence string
	BetterVersion     string
	Feedback          string
	Verdict           Verdict
}

// Verdict is the grading outcome category returned by the language model.
type Verdict string

// VerdictFullyCorrect is the only verdict that counts as a correct attempt.
// Anything else ("good", "needs improvement", ...) grades as incorrect.
const VerdictFullyCorrect Verdict = "fully correct"

// IsCorrect reports whether the verdict means the sentence was fully correct.
// Comparison ignores case and surrounding whitespace.
func (v Verdict) IsCorrect() bool {
	return strings.EqualFold(strings.TrimSpace(string(v)), string(VerdictFullyCorrect))
}
