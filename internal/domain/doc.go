// Package domain contains the core business entities of the vocabulary
// trainer: words, graded practice sessions, and their validation rules.
// It is independent of any specific infrastructure or delivery mechanism.
package domain
