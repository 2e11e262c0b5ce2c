package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"vocabcoach/internal/domain"
	"vocabcoach/internal/store"
)

// PracticeLog is a mutex-guarded in-memory append-only practice log.
// Sessions are kept in insertion order, which matches creation order since
// appends happen synchronously per submission.
type PracticeLog struct {
	mu       sync.RWMutex
	sessions []*domain.PracticeSession
	byID     map[uuid.UUID]struct{}
}

// NewPracticeLog creates an empty in-memory practice log.
func NewPracticeLog() *PracticeLog {
	return &PracticeLog{byID: make(map[uuid.UUID]struct{})}
}

// Ensure PracticeLog implements store.PracticeLog at compile time.
var _ store.PracticeLog = (*PracticeLog)(nil)

// Append implements store.PracticeLog.Append.
// The duplicate check runs before any mutation, so a rejected append leaves
// the log untouched.
func (l *PracticeLog) Append(_ context.Context, session *domain.PracticeSession) error {
	if err := session.Validate(); err != nil {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.byID[session.ID]; exists {
		return fmt.Errorf("%w: %s", store.ErrDuplicateSession, session.ID)
	}

	copied := *session
	l.sessions = append(l.sessions, &copied)
	l.byID[session.ID] = struct{}{}
	return nil
}

// ListAll implements store.PracticeLog.ListAll.
func (l *PracticeLog) ListAll(_ context.Context) ([]*domain.PracticeSession, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	sessions := make([]*domain.PracticeSession, 0, len(l.sessions))
	for _, session := range l.sessions {
		copied := *session
		sessions = append(sessions, &copied)
	}

	return sessions, nil
}
