package grading

import (
	"errors"
	"fmt"
)

// Common errors returned by the grading boundary.
var (
	// ErrEmptyInput is returned when the target word or sentence is empty
	// after trimming whitespace.
	ErrEmptyInput = errors.New("target word and sentence cannot be empty")

	// ErrGatewayFailure is returned when the language model cannot be
	// reached or fails to produce a response. The underlying cause is
	// preserved in the wrapped error.
	ErrGatewayFailure = errors.New("language model gateway failure")

	// ErrMalformedResponse is a variant of ErrGatewayFailure returned when
	// the model responds but the response cannot be parsed or is missing
	// required fields. errors.Is(err, ErrGatewayFailure) holds for it.
	ErrMalformedResponse = fmt.Errorf("%w: malformed response", ErrGatewayFailure)

	// ErrInvalidConfig is returned when a grader implementation is
	// constructed with invalid configuration.
	ErrInvalidConfig = errors.New("invalid grader configuration")
)
