package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vocabcoach/internal/domain"
	"vocabcoach/internal/grading"
	"vocabcoach/internal/service/practice"
)

// mockPracticeService is a mock implementation of the practice.Service interface.
type mockPracticeService struct {
	gradeFn   func(ctx context.Context, sub practice.Submission) (*practice.Result, error)
	historyFn func(ctx context.Context) ([]*domain.PracticeSession, error)
}

func (m *mockPracticeService) GradeSentence(
	ctx context.Context,
	sub practice.Submission,
) (*practice.Result, error) {
	return m.gradeFn(ctx, sub)
}

func (m *mockPracticeService) History(ctx context.Context) ([]*domain.PracticeSession, error) {
	return m.historyFn(ctx)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func gradedSession(t *testing.T, term string, correct bool) *domain.PracticeSession {
	t.Helper()
	session, err := domain.NewPracticeSession(
		"word-1",
		term,
		"I wrote a sentence.",
		"I wrote a sentence.",
		"I composed a sentence.",
		"Well done.",
		correct,
	)
	require.NoError(t, err)
	return session
}

func TestSubmitSentence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		serviceResult  *practice.Result
		serviceError   error
		expectedStatus int
		expectWarning  bool
	}{
		{
			name:           "Graded",
			serviceResult:  &practice.Result{Session: gradedSession(t, "ephemeral", true)},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "Graded With No Match Warning",
			serviceResult: &practice.Result{
				Session:        gradedSession(t, "serendipity", false),
				NoMatchWarning: true,
			},
			expectedStatus: http.StatusCreated,
			expectWarning:  true,
		},
		{
			name:           "Missing Credentials",
			serviceError:   practice.ErrMissingCredentials,
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:           "Empty Input",
			serviceError:   fmt.Errorf("%w: sentence", grading.ErrEmptyInput),
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Gateway Failure",
			serviceError:   fmt.Errorf("%w: timeout", grading.ErrGatewayFailure),
			expectedStatus: http.StatusBadGateway,
		},
		{
			name:           "Superseded",
			serviceError:   practice.ErrSubmissionSuperseded,
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			handler := NewPracticeHandler(&mockPracticeService{
				gradeFn: func(context.Context, practice.Submission) (*practice.Result, error) {
					return tc.serviceResult, tc.serviceError
				},
			}, testLogger())

			body, err := json.Marshal(PracticeRequest{
				TargetWord: "ephemeral",
				Sentence:   "I wrote a sentence.",
			})
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/practice", bytes.NewReader(body))
			rr := httptest.NewRecorder()
			handler.SubmitSentence(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.serviceError != nil {
				return
			}

			var resp PracticeResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tc.serviceResult.Session.ID.String(), resp.Session.ID)
			assert.Equal(t, tc.serviceResult.Session.IsCorrect, resp.Session.IsCorrect)
			if tc.expectWarning {
				assert.NotEmpty(t, resp.Warning)
			} else {
				assert.Empty(t, resp.Warning)
			}
		})
	}
}

func TestSubmitSentenceRejectsMalformedBody(t *testing.T) {
	t.Parallel()

	handler := NewPracticeHandler(&mockPracticeService{
		gradeFn: func(context.Context, practice.Submission) (*practice.Result, error) {
			t.Fatal("service must not be called for malformed bodies")
			return nil, nil
		},
	}, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/practice", bytes.NewReader([]byte("{not json")))
	rr := httptest.NewRecorder()
	handler.SubmitSentence(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetHistory(t *testing.T) {
	t.Parallel()

	first := gradedSession(t, "ephemeral", true)
	second := gradedSession(t, "serendipity", false)
	second.CreatedAt = first.CreatedAt.Add(time.Minute)

	handler := NewPracticeHandler(&mockPracticeService{
		historyFn: func(context.Context) ([]*domain.PracticeSession, error) {
			return []*domain.PracticeSession{first, second}, nil
		},
	}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/practice/history", nil)
	rr := httptest.NewRecorder()
	handler.GetHistory(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp []PracticeSessionResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Equal(t, "ephemeral", resp[0].WordTerm)
	assert.Equal(t, "serendipity", resp[1].WordTerm)
}

func TestGetHistoryEmpty(t *testing.T) {
	t.Parallel()

	handler := NewPracticeHandler(&mockPracticeService{
		historyFn: func(context.Context) ([]*domain.PracticeSession, error) {
			return nil, nil
		},
	}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/practice/history", nil)
	rr := httptest.NewRecorder()
	handler.GetHistory(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}
