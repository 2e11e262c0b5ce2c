// Package review implements the flashcard review state machine: a snapshot
// of the vocabulary, a current card chosen uniformly at random, a flip state
// and a presentation mode. There is no spaced-repetition scheduling and no
// persisted progress; sessions are transient by design.
package review
