package grading_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"vocabcoach/internal/grading"
)

func TestVerdictIsCorrect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		verdict grading.Verdict
		want    bool
	}{
		{"exact match", "fully correct", true},
		{"mixed case", "Fully Correct", true},
		{"surrounding whitespace", "  fully correct \n", true},
		{"good is not correct", "Good", false},
		{"needs improvement", "needs improvement", false},
		{"empty verdict", "", false},
		{"partial match", "fully", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.verdict.IsCorrect())
		})
	}
}

func TestMalformedResponseIsGatewayFailure(t *testing.T) {
	t.Parallel()

	// Malformed responses are a sub-case of gateway failure, so callers
	// matching the broad sentinel catch both.
	assert.True(t, errors.Is(grading.ErrMalformedResponse, grading.ErrGatewayFailure))
	assert.False(t, errors.Is(grading.ErrGatewayFailure, grading.ErrMalformedResponse))
}
