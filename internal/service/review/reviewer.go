package review

import (
	"errors"
	"math/rand"
	"time"

	"vocabcoach/internal/domain"
)

// Mode selects which word fields are presented as the card front and back.
type Mode string

const (
	// ModeRecall shows the term and asks for its meaning.
	ModeRecall Mode = "recall"
	// ModeChallenge shows the definition and asks for the term.
	ModeChallenge Mode = "challenge"
)

// challengePrompt is the static hint shown on the front in challenge mode.
const challengePrompt = "Guess the word"

// Common error types for the reviewer.
var (
	// ErrEmptyWordSet indicates a review session was started with no words.
	ErrEmptyWordSet = errors.New("cannot review an empty word set")

	// ErrInvalidMode indicates an unknown review mode.
	ErrInvalidMode = errors.New("invalid review mode")
)

// State is the reviewer's composite state. Index always satisfies
// 0 <= Index < len(words); Flipped resets to false whenever Index changes.
type State struct {
	Index   int  `json:"index"`
	Flipped bool `json:"flipped"`
	Mode    Mode `json:"mode"`
}

// CardView is the rendered front and back of the current card. It is a pure
// function of the reviewer state, derived on demand.
type CardView struct {
	Front []string `json:"front"`
	Back  []string `json:"back"`
	// Flipped mirrors the state so a UI knows which side to show.
	Flipped bool `json:"flipped"`
}

// Reviewer is the flashcard review state machine. It operates on a snapshot
// of the word set taken at session start and is mutated one UI event at a
// time; it is not safe for concurrent use and holds no persistent progress.
type Reviewer struct {
	words   []*domain.Word
	index   int
	flipped bool
	mode    Mode
	rng     *rand.Rand
}

// NewReviewer starts a review session over a snapshot of words.
// The initial card is drawn uniformly at random; rng may be nil, in which
// case a time-seeded source is used (tests pass a seeded one).
//
// Returns ErrEmptyWordSet when words is empty and ErrInvalidMode for an
// unknown mode.
func NewReviewer(words []*domain.Word, mode Mode, rng *rand.Rand) (*Reviewer, error) {
	if len(words) == 0 {
		return nil, ErrEmptyWordSet
	}

	if mode != ModeRecall && mode != ModeChallenge {
		return nil, ErrInvalidMode
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	snapshot := make([]*domain.Word, len(words))
	copy(snapshot, words)

	return &Reviewer{
		words: snapshot,
		index: rng.Intn(len(snapshot)),
		mode:  mode,
		rng:   rng,
	}, nil
}

// Flip toggles between the front and back of the current card.
// The current card never changes on a flip.
func (r *Reviewer) Flip() {
	r.flipped = !r.flipped
}

// Next draws the next card uniformly at random from the full word set and
// shows its front. The same card may repeat; there is deliberately no
// "avoid immediate repeat" rule and no weighting by past results.
func (r *Reviewer) Next() {
	r.index = r.rng.Intn(len(r.words))
	r.flipped = false
}

// SetMode switches the presentation mode without changing the current card
// or which side is showing.
// Returns ErrInvalidMode for an unknown mode.
func (r *Reviewer) SetMode(mode Mode) error {
	if mode != ModeRecall && mode != ModeChallenge {
		return ErrInvalidMode
	}
	r.mode = mode
	return nil
}

// State returns the current composite state.
func (r *Reviewer) State() State {
	return State{Index: r.index, Flipped: r.flipped, Mode: r.mode}
}

// Current returns the word under review.
func (r *Reviewer) Current() *domain.Word {
	return r.words[r.index]
}

// Card derives the displayed card from the current state.
func (r *Reviewer) Card() CardView {
	word := r.Current()

	var front, back []string
	switch r.mode {
	case ModeChallenge:
		front = []string{word.EnglishDefinition, challengePrompt}
		back = []string{word.Term, word.NativeDefinition}
	default: // ModeRecall
		front = []string{word.Term}
		if word.Pronunciation != "" {
			front = append(front, word.Pronunciation)
		}
		back = []string{word.NativeDefinition, word.EnglishDefinition}
		if word.UsageContext != "" {
			back = append(back, word.UsageContext)
		}
	}

	return CardView{Front: front, Back: back, Flipped: r.flipped}
}

// Size returns the number of words in the session snapshot.
func (r *Reviewer) Size() int {
	return len(r.words)
}
