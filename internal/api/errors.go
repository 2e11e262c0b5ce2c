package api

import (
	"errors"
	"net/http"

	"vocabcoach/internal/domain"
	"vocabcoach/internal/grading"
	"vocabcoach/internal/service/practice"
	"vocabcoach/internal/service/review"
	"vocabcoach/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Grading gateway is unusable without credentials
	case errors.Is(err, practice.ErrMissingCredentials):
		return http.StatusServiceUnavailable

	// A newer submission replaced this one before it finished
	case errors.Is(err, practice.ErrSubmissionSuperseded):
		return http.StatusConflict

	// Upstream grading failures, including malformed responses
	case errors.Is(err, grading.ErrGatewayFailure):
		return http.StatusBadGateway

	// Not found errors
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, review.ErrSessionNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, grading.ErrEmptyInput),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, review.ErrInvalidMode),
		errors.Is(err, review.ErrEmptyWordSet):
		return http.StatusBadRequest

	// Default: internal server error
	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, practice.ErrMissingCredentials):
		return "Grading service is not configured"

	case errors.Is(err, practice.ErrSubmissionSuperseded):
		return "Submission was superseded by a newer one"

	case errors.Is(err, grading.ErrMalformedResponse):
		return "Grading service returned an unreadable response"

	case errors.Is(err, grading.ErrGatewayFailure):
		return "Grading service is unavailable"

	case errors.Is(err, grading.ErrEmptyInput):
		return "Word and sentence must not be empty"

	case errors.Is(err, store.ErrWordNotFound):
		return "Word not found"

	case errors.Is(err, review.ErrSessionNotFound):
		return "Review session not found"

	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	case errors.Is(err, store.ErrTermExists):
		return "Word already exists"

	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"

	case errors.Is(err, review.ErrInvalidMode):
		return "Invalid review mode"

	case errors.Is(err, review.ErrEmptyWordSet):
		return "No words available for review"

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid identifier"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, store.ErrInvalidEntity):
		return "Invalid request data"

	default:
		return "An unexpected error occurred"
	}
}
