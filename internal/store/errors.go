package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the
	// store. Entity-specific variants below wrap it so callers can match
	// either the generic or the specific error.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would create a duplicate
	// of a unique entity.
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrWordNotFound indicates that the requested word does not exist.
	ErrWordNotFound = fmt.Errorf("%w: word", ErrNotFound)

	// ErrTermExists indicates that a word with the same term already exists.
	ErrTermExists = fmt.Errorf("%w: term", ErrDuplicate)

	// ErrDuplicateSession indicates an append with an already-recorded
	// session ID. IDs are generated per submission, so this is a defensive
	// invariant check rather than an expected condition.
	ErrDuplicateSession = fmt.Errorf("%w: practice session", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
