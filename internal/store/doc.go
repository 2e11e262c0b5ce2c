// Package store defines the persistence interfaces of the vocabulary
// trainer: the vocabulary of words and the append-only practice log.
// They abstract the underlying storage mechanism (postgres or in-memory)
// from the application's core logic.
package store
