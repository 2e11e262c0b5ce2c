package practice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"vocabcoach/internal/domain"
	"vocabcoach/internal/grading"
	"vocabcoach/internal/platform/logger"
	"vocabcoach/internal/store"
)

// Verify interface compliance at compile time
var _ Service = (*serviceImpl)(nil)

// serviceImpl implements the Service interface.
type serviceImpl struct {
	vocabulary  store.VocabularyStore
	practiceLog store.PracticeLog
	grader      grading.Grader
	credentials string
	logger      *slog.Logger

	// seq is the monotonically increasing submission sequence used as the
	// stale-response guard: a result whose sequence is no longer current
	// when the gateway returns is discarded instead of logged.
	seq atomic.Int64
}

// NewService creates a new practice Service implementation.
// credentials is the opaque access token for the language model; it may be
// empty, in which case every grading call fails with ErrMissingCredentials.
func NewService(
	vocabulary store.VocabularyStore,
	practiceLog store.PracticeLog,
	grader grading.Grader,
	credentials string,
	log *slog.Logger,
) Service {
	if vocabulary == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("vocabulary store cannot be nil")
	}
	if practiceLog == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("practice log cannot be nil")
	}
	if grader == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("grader cannot be nil")
	}

	if log == nil {
		log = slog.Default()
	}

	return &serviceImpl{
		vocabulary:  vocabulary,
		practiceLog: practiceLog,
		grader:      grader,
		credentials: credentials,
		logger:      log.With(slog.String("component", "practice_service")),
	}
}

// GradeSentence implements Service.GradeSentence.
func (s *serviceImpl) GradeSentence(ctx context.Context, sub Submission) (*Result, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	targetWord := strings.TrimSpace(sub.TargetWord)
	sentence := strings.TrimSpace(sub.Sentence)

	if targetWord == "" {
		return nil, domain.NewValidationError("target_word", "cannot be blank", grading.ErrEmptyInput)
	}
	if sentence == "" {
		return nil, domain.NewValidationError("sentence", "cannot be blank", grading.ErrEmptyInput)
	}

	// Credentials are a precondition; fail before any lookup or network call.
	if s.credentials == "" {
		log.Warn("grading rejected: no credentials configured")
		return nil, ErrMissingCredentials
	}

	// Each submission gets the next sequence number; an older submission
	// still in flight becomes stale the moment this increments.
	mySeq := s.seq.Add(1)

	log.Debug("grading sentence",
		slog.String("target_word", targetWord),
		slog.Int64("submission_seq", mySeq))

	matched, err := s.vocabulary.FindByTerm(ctx, targetWord)
	noMatch := false
	if err != nil {
		if !errors.Is(err, store.ErrWordNotFound) {
			log.Error("vocabulary lookup failed",
				slog.String("error", err.Error()),
				slog.String("target_word", targetWord))
			return nil, fmt.Errorf("failed to look up target word: %w", err)
		}
		// Absent word does not block grading; the model checks grammar
		// generally and the session records the unknown sentinel.
		noMatch = true
		log.Debug("target word not in vocabulary", slog.String("target_word", targetWord))
	}

	req := grading.GradeRequest{
		Word:         targetWord,
		UserSentence: sentence,
	}
	if matched != nil {
		req.DefinitionContext = definitionContext(matched)
	}

	// The single gateway call. Failures are surfaced, never retried.
	graded, err := s.grader.GradeSentence(ctx, req)
	if err != nil {
		log.Error("grading call failed",
			slog.String("error", err.Error()),
			slog.String("target_word", targetWord))
		return nil, err
	}

	// Stale-response guard: if a newer submission started while we were
	// waiting on the gateway, this result must not be applied.
	if s.seq.Load() != mySeq {
		log.Warn("discarding stale grading result",
			slog.Int64("submission_seq", mySeq),
			slog.Int64("current_seq", s.seq.Load()))
		return nil, ErrSubmissionSuperseded
	}

	wordID := domain.UnknownWordID
	if matched != nil {
		wordID = matched.ID.String()
	}

	session, err := domain.NewPracticeSession(
		wordID,
		targetWord,
		sentence,
		graded.CorrectedSentence,
		graded.BetterVersion,
		graded.Feedback,
		graded.Verdict.IsCorrect(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create practice session: %w", err)
	}

	if err := s.practiceLog.Append(ctx, session); err != nil {
		log.Error("failed to record practice session",
			slog.String("error", err.Error()),
			slog.String("session_id", session.ID.String()))
		return nil, fmt.Errorf("failed to record practice session: %w", err)
	}

	log.Info("sentence graded",
		slog.String("session_id", session.ID.String()),
		slog.String("target_word", targetWord),
		slog.Bool("is_correct", session.IsCorrect),
		slog.Bool("no_match", noMatch))

	return &Result{Session: session, NoMatchWarning: noMatch}, nil
}

// History implements Service.History.
func (s *serviceImpl) History(ctx context.Context) ([]*domain.PracticeSession, error) {
	sessions, err := s.practiceLog.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list practice history: %w", err)
	}
	return sessions, nil
}

// definitionContext renders the matched word's reference material for the
// grading prompt.
func definitionContext(word *domain.Word) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Definition: %s", word.EnglishDefinition)
	if word.NativeDefinition != "" {
		fmt.Fprintf(&sb, "\nNative-language definition: %s", word.NativeDefinition)
	}
	if word.SampleSentence != "" {
		fmt.Fprintf(&sb, "\nSample sentence: %s", word.SampleSentence)
	}
	if word.UsageContext != "" {
		fmt.Fprintf(&sb, "\nUsage notes: %s", word.UsageContext)
	}
	return sb.String()
}
