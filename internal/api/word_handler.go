package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"vocabcoach/internal/api/shared"
	"vocabcoach/internal/domain"
	"vocabcoach/internal/platform/logger"
	"vocabcoach/internal/store"
)

// CreateWordRequest defines the payload for adding a vocabulary word.
// At least one of the two definitions must be present; the domain layer
// enforces that rule, so neither is individually required here.
type CreateWordRequest struct {
	Term              string `json:"term"               validate:"required"`
	EnglishDefinition string `json:"english_definition"`
	NativeDefinition  string `json:"native_definition"`
	Pronunciation     string `json:"pronunciation"`
	SampleSentence    string `json:"sample_sentence"`
	UsageContext      string `json:"usage_context"`
}

// WordResponse represents the response data for a vocabulary word.
type WordResponse struct {
	ID                string    `json:"id"`
	Term              string    `json:"term"`
	EnglishDefinition string    `json:"english_definition"`
	NativeDefinition  string    `json:"native_definition"`
	Pronunciation     string    `json:"pronunciation"`
	SampleSentence    string    `json:"sample_sentence"`
	UsageContext      string    `json:"usage_context,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// WordHandler handles vocabulary management HTTP requests.
type WordHandler struct {
	vocabulary store.VocabularyStore
	logger     *slog.Logger
}

// NewWordHandler creates a new WordHandler.
func NewWordHandler(vocabulary store.VocabularyStore, logger *slog.Logger) *WordHandler {
	if vocabulary == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("vocabulary store cannot be nil for WordHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for WordHandler")
	}

	return &WordHandler{
		vocabulary: vocabulary,
		logger:     logger.With(slog.String("component", "word_handler")),
	}
}

// CreateWord handles POST /words requests.
func (h *WordHandler) CreateWord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateWordRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid word request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("word request validation failed", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Term is required")
		return
	}

	word, err := domain.NewWord(
		req.Term,
		req.EnglishDefinition,
		req.NativeDefinition,
		req.Pronunciation,
		req.SampleSentence,
		req.UsageContext,
	)
	if err != nil {
		log.Warn("word validation failed", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.vocabulary.Create(r.Context(), word); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("word created",
		slog.String("word_id", word.ID.String()),
		slog.String("term", word.Term))
	shared.RespondWithJSON(w, r, http.StatusCreated, wordToResponse(word))
}

// ListWords handles GET /words requests. Words are returned oldest first.
func (h *WordHandler) ListWords(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	words, err := h.vocabulary.ListWords(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(
			w, r, MapErrorToStatusCode(err), "Failed to list words", err)
		return
	}

	responses := make([]WordResponse, 0, len(words))
	for _, word := range words {
		responses = append(responses, wordToResponse(word))
	}

	log.Debug("words listed", slog.Int("count", len(responses)))
	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// GetWord handles GET /words/{id} requests.
func (h *WordHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.wordIDFromPath(w, r, log)
	if !ok {
		return
	}

	word, err := h.vocabulary.GetByID(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, wordToResponse(word))
}

// DeleteWord handles DELETE /words/{id} requests.
// Practice history referencing the word is left untouched.
func (h *WordHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.wordIDFromPath(w, r, log)
	if !ok {
		return
	}

	if err := h.vocabulary.Delete(r.Context(), id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("word deleted", slog.String("word_id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

// wordIDFromPath extracts and parses the {id} path parameter. On failure it
// writes the error response itself and returns ok=false.
func (h *WordHandler) wordIDFromPath(
	w http.ResponseWriter,
	r *http.Request,
	log *slog.Logger,
) (uuid.UUID, bool) {
	pathID := chi.URLParam(r, "id")
	if pathID == "" {
		log.Warn("word ID not found in URL path")
		shared.RespondWithError(w, r, http.StatusBadRequest, "Word ID is required")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(pathID)
	if err != nil {
		log.Warn("invalid word ID format", slog.String("word_id", pathID))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid word ID format")
		return uuid.Nil, false
	}

	return id, true
}

// wordToResponse transforms a domain word into its API representation.
func wordToResponse(word *domain.Word) WordResponse {
	return WordResponse{
		ID:                word.ID.String(),
		Term:              word.Term,
		EnglishDefinition: word.EnglishDefinition,
		NativeDefinition:  word.NativeDefinition,
		Pronunciation:     word.Pronunciation,
		SampleSentence:    word.SampleSentence,
		UsageContext:      word.UsageContext,
		CreatedAt:         word.CreatedAt,
		UpdatedAt:         word.UpdatedAt,
	}
}
