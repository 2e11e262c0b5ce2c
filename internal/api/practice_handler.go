package api

import (
	"log/slog"
	"net/http"
	"time"

	"vocabcoach/internal/api/shared"
	"vocabcoach/internal/domain"
	"vocabcoach/internal/platform/logger"
	"vocabcoach/internal/service/practice"
)

// PracticeRequest defines the payload for submitting a sentence to grade.
type PracticeRequest struct {
	TargetWord string `json:"target_word" validate:"required"`
	Sentence   string `json:"sentence"    validate:"required"`
}

// PracticeSessionResponse represents one graded practice session.
type PracticeSessionResponse struct {
	ID                string    `json:"id"`
	WordID            string    `json:"word_id"`
	WordTerm          string    `json:"word_term"`
	UserSentence      string    `json:"user_sentence"`
	CorrectedSentence string    `json:"corrected_sentence"`
	BetterVersion     string    `json:"better_version"`
	Feedback          string    `json:"feedback"`
	IsCorrect         bool      `json:"is_correct"`
	CreatedAt         time.Time `json:"created_at"`
}

// PracticeResponse is the result of a grading submission. Warning is set
// when the target word was not in the vocabulary and grading fell back to
// generic context.
type PracticeResponse struct {
	Session PracticeSessionResponse `json:"session"`
	Warning string                  `json:"warning,omitempty"`
}

// PracticeHandler handles sentence grading and practice history requests.
type PracticeHandler struct {
	practiceService practice.Service
	logger          *slog.Logger
}

// NewPracticeHandler creates a new PracticeHandler.
func NewPracticeHandler(practiceService practice.Service, logger *slog.Logger) *PracticeHandler {
	if practiceService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("practiceService cannot be nil for PracticeHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for PracticeHandler")
	}

	return &PracticeHandler{
		practiceService: practiceService,
		logger:          logger.With(slog.String("component", "practice_handler")),
	}
}

// SubmitSentence handles POST /practice requests.
// It grades the submitted sentence and records the result in the history.
func (h *PracticeHandler) SubmitSentence(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req PracticeRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid practice request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("practice request validation failed", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Target word and sentence are required")
		return
	}

	result, err := h.practiceService.GradeSentence(r.Context(), practice.Submission{
		TargetWord: req.TargetWord,
		Sentence:   req.Sentence,
	})
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	response := PracticeResponse{Session: sessionToResponse(result.Session)}
	if result.NoMatchWarning {
		response.Warning = "Word not found in vocabulary; graded with generic context"
	}

	log.Debug("sentence graded",
		slog.String("session_id", result.Session.ID.String()),
		slog.Bool("is_correct", result.Session.IsCorrect),
		slog.Bool("no_match", result.NoMatchWarning))
	shared.RespondWithJSON(w, r, http.StatusCreated, response)
}

// GetHistory handles GET /practice/history requests.
// Sessions are returned oldest first, matching the order they were recorded.
func (h *PracticeHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	sessions, err := h.practiceService.History(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(
			w, r, MapErrorToStatusCode(err), "Failed to load practice history", err)
		return
	}

	responses := make([]PracticeSessionResponse, 0, len(sessions))
	for _, s := range sessions {
		responses = append(responses, sessionToResponse(s))
	}

	log.Debug("practice history retrieved", slog.Int("count", len(responses)))
	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// sessionToResponse transforms a domain session into its API representation.
func sessionToResponse(s *domain.PracticeSession) PracticeSessionResponse {
	return PracticeSessionResponse{
		ID:                s.ID.String(),
		WordID:            s.WordID,
		WordTerm:          s.WordTerm,
		UserSentence:      s.UserSentence,
		CorrectedSentence: s.CorrectedSentence,
		BetterVersion:     s.BetterVersion,
		Feedback:          s.Feedback,
		IsCorrect:         s.IsCorrect,
		CreatedAt:         s.CreatedAt,
	}
}
