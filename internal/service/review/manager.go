package review

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"vocabcoach/internal/domain"
)

// ErrSessionNotFound indicates an unknown or already-ended review session.
var ErrSessionNotFound = errors.New("review session not found")

// SessionManager tracks live review sessions for the HTTP surface.
// Each session owns one Reviewer; all access is serialized through the
// manager's mutex since reviewer transitions are not concurrency-safe.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]*Reviewer
}

// NewSessionManager creates an empty session registry.
func NewSessionManager() *SessionManager {
	return &SessionManager{sessions: make(map[uuid.UUID]*Reviewer)}
}

// Start creates a new review session over the given word snapshot and
// returns its ID. Fails with ErrEmptyWordSet or ErrInvalidMode.
func (m *SessionManager) Start(words []*domain.Word, mode Mode) (uuid.UUID, error) {
	reviewer, err := NewReviewer(words, mode, nil)
	if err != nil {
		return uuid.Nil, err
	}

	id := uuid.New()

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[id] = reviewer

	return id, nil
}

// Flip flips the card of the given session and returns the new view.
func (m *SessionManager) Flip(id uuid.UUID) (CardView, error) {
	return m.withSession(id, func(r *Reviewer) error {
		r.Flip()
		return nil
	})
}

// Next advances the given session to a new random card.
func (m *SessionManager) Next(id uuid.UUID) (CardView, error) {
	return m.withSession(id, func(r *Reviewer) error {
		r.Next()
		return nil
	})
}

// SetMode changes the presentation mode of the given session.
func (m *SessionManager) SetMode(id uuid.UUID, mode Mode) (CardView, error) {
	return m.withSession(id, func(r *Reviewer) error {
		return r.SetMode(mode)
	})
}

// Card returns the current view of the given session without mutating it.
func (m *SessionManager) Card(id uuid.UUID) (CardView, error) {
	return m.withSession(id, func(*Reviewer) error { return nil })
}

// End discards the given session and its transient state.
// Returns ErrSessionNotFound if it does not exist.
func (m *SessionManager) End(id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrSessionNotFound
	}

	delete(m.sessions, id)
	return nil
}

// withSession applies fn to the session's reviewer under the lock and
// returns the resulting card view.
func (m *SessionManager) withSession(id uuid.UUID, fn func(*Reviewer) error) (CardView, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	reviewer, ok := m.sessions[id]
	if !ok {
		return CardView{}, ErrSessionNotFound
	}

	if err := fn(reviewer); err != nil {
		return CardView{}, err
	}

	return reviewer.Card(), nil
}
