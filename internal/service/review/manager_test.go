package review_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vocabcoach/internal/service/review"
)

func TestSessionManagerLifecycle(t *testing.T) {
	t.Parallel()

	m := review.NewSessionManager()
	words := wordSet(t)

	id, err := m.Start(words, review.ModeRecall)
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	card, err := m.Card(id)
	require.NoError(t, err)
	assert.False(t, card.Flipped)

	card, err = m.Flip(id)
	require.NoError(t, err)
	assert.True(t, card.Flipped)

	card, err = m.Next(id)
	require.NoError(t, err)
	assert.False(t, card.Flipped)

	_, err = m.SetMode(id, review.ModeChallenge)
	require.NoError(t, err)

	card, err = m.Card(id)
	require.NoError(t, err)
	assert.Equal(t, "Guess the word", card.Front[1])

	require.NoError(t, m.End(id))
	assert.ErrorIs(t, m.End(id), review.ErrSessionNotFound)
}

func TestSessionManagerEmptySet(t *testing.T) {
	t.Parallel()

	m := review.NewSessionManager()
	_, err := m.Start(nil, review.ModeRecall)
	assert.ErrorIs(t, err, review.ErrEmptyWordSet)
}

func TestSessionManagerUnknownSession(t *testing.T) {
	t.Parallel()

	m := review.NewSessionManager()
	unknown := uuid.New()

	_, err := m.Card(unknown)
	assert.ErrorIs(t, err, review.ErrSessionNotFound)

	_, err = m.Flip(unknown)
	assert.ErrorIs(t, err, review.ErrSessionNotFound)

	_, err = m.Next(unknown)
	assert.ErrorIs(t, err, review.ErrSessionNotFound)

	_, err = m.SetMode(unknown, review.ModeRecall)
	assert.ErrorIs(t, err, review.ErrSessionNotFound)
}

func TestSessionManagerInvalidMode(t *testing.T) {
	t.Parallel()

	m := review.NewSessionManager()
	id, err := m.Start(wordSet(t), review.ModeRecall)
	require.NoError(t, err)

	_, err = m.SetMode(id, review.Mode("marathon"))
	assert.ErrorIs(t, err, review.ErrInvalidMode)
}
