package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vocabcoach/internal/platform/memory"
	"vocabcoach/internal/service/review"
)

func newReviewRouter(t *testing.T) (*chi.Mux, *memory.WordStore) {
	t.Helper()

	store := memory.NewWordStore()
	handler := NewReviewHandler(review.NewSessionManager(), store, testLogger())

	r := chi.NewRouter()
	r.Post("/review/sessions", handler.StartSession)
	r.Get("/review/sessions/{id}/card", handler.GetCard)
	r.Post("/review/sessions/{id}/flip", handler.FlipCard)
	r.Post("/review/sessions/{id}/next", handler.NextCard)
	r.Post("/review/sessions/{id}/mode", handler.SetMode)
	r.Delete("/review/sessions/{id}", handler.EndSession)

	return r, store
}

func startSession(t *testing.T, router *chi.Mux, mode string) ReviewCardResponse {
	t.Helper()

	body, err := json.Marshal(StartReviewRequest{Mode: mode})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/review/sessions", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)

	var resp ReviewCardResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.SessionID)
	return resp
}

func TestStartSessionRecall(t *testing.T) {
	t.Parallel()

	router, store := newReviewRouter(t)
	word := seedWord(t, store, "ephemeral")

	resp := startSession(t, router, "recall")

	assert.False(t, resp.Flipped)
	require.NotEmpty(t, resp.Front)
	assert.Equal(t, word.Term, resp.Front[0])
}

func TestStartSessionEmptyVocabulary(t *testing.T) {
	t.Parallel()

	router, _ := newReviewRouter(t)

	body, err := json.Marshal(StartReviewRequest{Mode: "recall"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/review/sessions", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestStartSessionInvalidMode(t *testing.T) {
	t.Parallel()

	router, store := newReviewRouter(t)
	seedWord(t, store, "ephemeral")

	body, err := json.Marshal(StartReviewRequest{Mode: "cram"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/review/sessions", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestFlipCard(t *testing.T) {
	t.Parallel()

	router, store := newReviewRouter(t)
	seedWord(t, store, "ephemeral")
	session := startSession(t, router, "recall")

	req := httptest.NewRequest(
		http.MethodPost, "/review/sessions/"+session.SessionID+"/flip", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp ReviewCardResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Flipped)
	assert.Equal(t, session.Front, resp.Front)
}

func TestNextCardResetsFlip(t *testing.T) {
	t.Parallel()

	router, store := newReviewRouter(t)
	seedWord(t, store, "ephemeral")
	session := startSession(t, router, "recall")

	flip := httptest.NewRequest(
		http.MethodPost, "/review/sessions/"+session.SessionID+"/flip", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, flip)
	require.Equal(t, http.StatusOK, rr.Code)

	next := httptest.NewRequest(
		http.MethodPost, "/review/sessions/"+session.SessionID+"/next", nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, next)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp ReviewCardResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.Flipped)
}

func TestSetMode(t *testing.T) {
	t.Parallel()

	router, store := newReviewRouter(t)
	word := seedWord(t, store, "ephemeral")
	session := startSession(t, router, "recall")

	body, err := json.Marshal(SetModeRequest{Mode: "challenge"})
	require.NoError(t, err)

	req := httptest.NewRequest(
		http.MethodPost, "/review/sessions/"+session.SessionID+"/mode", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp ReviewCardResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Front)
	assert.Equal(t, word.EnglishDefinition, resp.Front[0])
}

func TestEndSession(t *testing.T) {
	t.Parallel()

	router, store := newReviewRouter(t)
	seedWord(t, store, "ephemeral")
	session := startSession(t, router, "recall")

	end := httptest.NewRequest(
		http.MethodDelete, "/review/sessions/"+session.SessionID, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, end)
	require.Equal(t, http.StatusNoContent, rr.Code)

	card := httptest.NewRequest(
		http.MethodGet, "/review/sessions/"+session.SessionID+"/card", nil)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, card)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestUnknownSessionID(t *testing.T) {
	t.Parallel()

	router, _ := newReviewRouter(t)

	req := httptest.NewRequest(
		http.MethodGet, "/review/sessions/"+uuid.New().String()+"/card", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
