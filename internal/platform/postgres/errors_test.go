package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"vocabcoach/internal/store"
)

func TestMapError(t *testing.T) {
	t.Parallel()

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, MapError(nil))
	})

	t.Run("no rows maps to not found", func(t *testing.T) {
		err := MapError(fmt.Errorf("query failed: %w", sql.ErrNoRows))
		assert.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("unique violation maps to duplicate", func(t *testing.T) {
		err := MapError(&pgconn.PgError{Code: uniqueViolationCode})
		assert.ErrorIs(t, err, store.ErrDuplicate)
	})

	t.Run("check violation maps to invalid entity", func(t *testing.T) {
		err := MapError(&pgconn.PgError{Code: checkViolationCode, ConstraintName: "words_term_check"})
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.Contains(t, err.Error(), "words_term_check")
	})

	t.Run("not null violation maps to invalid entity", func(t *testing.T) {
		err := MapError(&pgconn.PgError{Code: notNullViolationCode, ColumnName: "term"})
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
	})

	t.Run("unknown errors pass through", func(t *testing.T) {
		base := errors.New("connection reset")
		assert.Equal(t, base, MapError(base))
	})
}

func TestIsUniqueViolation(t *testing.T) {
	t.Parallel()

	assert.True(t, IsUniqueViolation(&pgconn.PgError{Code: uniqueViolationCode}))
	assert.True(t, IsUniqueViolation(fmt.Errorf("wrapped: %w", &pgconn.PgError{Code: uniqueViolationCode})))
	assert.False(t, IsUniqueViolation(errors.New("other")))
	assert.False(t, IsUniqueViolation(nil))
}
