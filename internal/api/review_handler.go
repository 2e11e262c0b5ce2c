package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"vocabcoach/internal/api/shared"
	"vocabcoach/internal/platform/logger"
	"vocabcoach/internal/service/review"
	"vocabcoach/internal/store"
)

// StartReviewRequest defines the payload for starting a flashcard session.
type StartReviewRequest struct {
	Mode string `json:"mode" validate:"required,oneof=recall challenge"`
}

// SetModeRequest defines the payload for switching presentation modes.
type SetModeRequest struct {
	Mode string `json:"mode" validate:"required,oneof=recall challenge"`
}

// ReviewCardResponse represents the visible card of a review session.
type ReviewCardResponse struct {
	SessionID string   `json:"session_id"`
	Front     []string `json:"front"`
	Back      []string `json:"back"`
	Flipped   bool     `json:"flipped"`
}

// ReviewHandler handles flashcard review session HTTP requests. Sessions
// are transient; they live in the SessionManager and vanish on restart.
type ReviewHandler struct {
	sessions   *review.SessionManager
	vocabulary store.VocabularyStore
	logger     *slog.Logger
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(
	sessions *review.SessionManager,
	vocabulary store.VocabularyStore,
	logger *slog.Logger,
) *ReviewHandler {
	if sessions == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("session manager cannot be nil for ReviewHandler")
	}
	if vocabulary == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("vocabulary store cannot be nil for ReviewHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ReviewHandler")
	}

	return &ReviewHandler{
		sessions:   sessions,
		vocabulary: vocabulary,
		logger:     logger.With(slog.String("component", "review_handler")),
	}
}

// StartSession handles POST /review/sessions requests.
// The session snapshots the current vocabulary; words added or deleted
// afterwards do not affect it.
func (h *ReviewHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req StartReviewRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid review request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("review request validation failed", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Mode must be recall or challenge")
		return
	}

	words, err := h.vocabulary.ListWords(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(
			w, r, MapErrorToStatusCode(err), "Failed to load vocabulary", err)
		return
	}

	id, err := h.sessions.Start(words, review.Mode(req.Mode))
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	card, err := h.sessions.Card(id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("review session started",
		slog.String("session_id", id.String()),
		slog.String("mode", req.Mode),
		slog.Int("words", len(words)))
	shared.RespondWithJSON(w, r, http.StatusCreated, cardToResponse(id, card))
}

// GetCard handles GET /review/sessions/{id}/card requests.
func (h *ReviewHandler) GetCard(w http.ResponseWriter, r *http.Request) {
	h.withCardView(w, r, func(id uuid.UUID) (review.CardView, error) {
		return h.sessions.Card(id)
	})
}

// FlipCard handles POST /review/sessions/{id}/flip requests.
func (h *ReviewHandler) FlipCard(w http.ResponseWriter, r *http.Request) {
	h.withCardView(w, r, func(id uuid.UUID) (review.CardView, error) {
		return h.sessions.Flip(id)
	})
}

// NextCard handles POST /review/sessions/{id}/next requests.
func (h *ReviewHandler) NextCard(w http.ResponseWriter, r *http.Request) {
	h.withCardView(w, r, func(id uuid.UUID) (review.CardView, error) {
		return h.sessions.Next(id)
	})
}

// SetMode handles POST /review/sessions/{id}/mode requests.
func (h *ReviewHandler) SetMode(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req SetModeRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid mode request body", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("mode request validation failed", slog.String("error", err.Error()))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Mode must be recall or challenge")
		return
	}

	h.withCardView(w, r, func(id uuid.UUID) (review.CardView, error) {
		return h.sessions.SetMode(id, review.Mode(req.Mode))
	})
}

// EndSession handles DELETE /review/sessions/{id} requests.
func (h *ReviewHandler) EndSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.sessionIDFromPath(w, r, log)
	if !ok {
		return
	}

	if err := h.sessions.End(id); err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("review session ended", slog.String("session_id", id.String()))
	w.WriteHeader(http.StatusNoContent)
}

// withCardView runs a session operation and writes the resulting card view.
func (h *ReviewHandler) withCardView(
	w http.ResponseWriter,
	r *http.Request,
	op func(uuid.UUID) (review.CardView, error),
) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.sessionIDFromPath(w, r, log)
	if !ok {
		return
	}

	card, err := op(id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, cardToResponse(id, card))
}

// sessionIDFromPath extracts and parses the {id} path parameter. On failure
// it writes the error response itself and returns ok=false.
func (h *ReviewHandler) sessionIDFromPath(
	w http.ResponseWriter,
	r *http.Request,
	log *slog.Logger,
) (uuid.UUID, bool) {
	pathID := chi.URLParam(r, "id")
	if pathID == "" {
		log.Warn("session ID not found in URL path")
		shared.RespondWithError(w, r, http.StatusBadRequest, "Session ID is required")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(pathID)
	if err != nil {
		log.Warn("invalid session ID format", slog.String("session_id", pathID))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid session ID format")
		return uuid.Nil, false
	}

	return id, true
}

// cardToResponse transforms a card view into its API representation.
func cardToResponse(id uuid.UUID, card review.CardView) ReviewCardResponse {
	return ReviewCardResponse{
		SessionID: id.String(),
		Front:     card.Front,
		Back:      card.Back,
		Flipped:   card.Flipped,
	}
}
