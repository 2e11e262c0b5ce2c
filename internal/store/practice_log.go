package store

import (
	"context"

	"vocabcoach/internal/domain"
)

// PracticeLog defines the interface for the append-only practice history.
// Sessions are an audit trail, not editable state: there is deliberately no
// update or delete operation.
type PracticeLog interface {
	// Append saves a new practice session.
	// Session IDs are generated fresh per submission, so a collision should
	// be unreachable; Append still checks and returns ErrDuplicateSession
	// as a defensive invariant. An append either fully succeeds or leaves
	// the log untouched.
	Append(ctx context.Context, session *domain.PracticeSession) error

	// ListAll retrieves every recorded session ordered by creation time
	// ascending. Returns an empty slice when nothing has been practiced.
	ListAll(ctx context.Context) ([]*domain.PracticeSession, error)
}
