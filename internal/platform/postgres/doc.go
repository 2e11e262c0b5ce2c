// Package postgres provides PostgreSQL-backed implementations of the store
// interfaces. Database errors are translated into the store error taxonomy
// through MapError so callers never depend on driver-specific errors.
package postgres
