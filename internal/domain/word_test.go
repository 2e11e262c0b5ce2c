package domain_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vocabcoach/internal/domain"
)

func TestNewWord(t *testing.T) {
	t.Parallel()

	word, err := domain.NewWord(
		"  Ephemeral  ",
		"lasting for a very short time",
		"hayawan",
		"ih-FEM-er-uhl",
		"Fame is ephemeral.",
		"formal register",
	)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, word.ID)
	assert.Equal(t, "Ephemeral", word.Term, "term should be trimmed")
	assert.Equal(t, word.CreatedAt, word.UpdatedAt)
	assert.False(t, word.CreatedAt.IsZero())
}

func TestNewWordValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		term        string
		english     string
		native      string
		expectedErr error
	}{
		{"empty term", "", "a definition", "", domain.ErrWordTermEmpty},
		{"whitespace term", "   ", "a definition", "", domain.ErrWordTermEmpty},
		{"no definitions", "ephemeral", "", "", domain.ErrWordDefinitionEmpty},
		{"whitespace definitions", "ephemeral", "  ", "  ", domain.ErrWordDefinitionEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := domain.NewWord(tt.term, tt.english, tt.native, "", "", "")
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestNewWordSingleDefinitionSuffices(t *testing.T) {
	t.Parallel()

	_, err := domain.NewWord("ephemeral", "short-lived", "", "", "", "")
	assert.NoError(t, err, "english definition alone should be enough")

	_, err = domain.NewWord("ephemeral", "", "hayawan", "", "", "")
	assert.NoError(t, err, "native definition alone should be enough")
}

func TestNormalizeTerm(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ephemeral", domain.NormalizeTerm("  EPHEMERAL "))
	assert.Equal(t, "ephemeral", domain.NormalizeTerm("Ephemeral"))
	assert.Equal(t, "", domain.NormalizeTerm("   "))

	word, err := domain.NewWord("Ephemeral", "short-lived", "", "", "", "")
	require.NoError(t, err)
	assert.Equal(t, "ephemeral", word.NormalizedTerm())
}
