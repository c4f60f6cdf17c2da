package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// CardStatus represents the learning state of a vocabulary card.
type CardStatus string

const (
	// CardStatusNew marks a card that has never been reviewed.
	CardStatusNew CardStatus = "new"

	// CardStatusReviewing marks a card in the spaced-repetition cycle.
	CardStatusReviewing CardStatus = "reviewing"

	// CardStatusMastered marks a card the learner has fully learned,
	// either by reaching the consecutive-remember threshold or by an
	// explicit master action.
	CardStatusMastered CardStatus = "mastered"

	// CardStatusBad marks a card flagged as low quality. Bad cards are
	// never scheduled again.
	CardStatusBad CardStatus = "bad"
)

// Card-specific validation errors
var (
	// ErrCardIDEmpty is returned when a card ID is empty or nil.
	ErrCardIDEmpty = errors.New("card ID cannot be empty")

	// ErrCardWordEmpty is returned when a card's word text is empty.
	ErrCardWordEmpty = errors.New("card word cannot be empty")

	// ErrCardStatusInvalid is returned when a card's status is not one of
	// the recognized statuses.
	ErrCardStatusInvalid = errors.New("card status is invalid")

	// ErrCardIntervalNegative is returned when a card's review interval
	// is negative.
	ErrCardIntervalNegative = errors.New("card interval cannot be negative")

	// ErrCardNextReviewMissing is returned when a reviewing card has no
	// next review time.
	ErrCardNextReviewMissing = errors.New("reviewing card must have a next review time")

	// ErrCardNextReviewForbidden is returned when a non-reviewing card
	// carries a next review time.
	ErrCardNextReviewForbidden = errors.New("only reviewing cards may have a next review time")

	// ErrCardCountNegative is returned when a card's consecutive remember
	// count or review count is negative.
	ErrCardCountNegative = errors.New("card counters cannot be negative")
)

// ExampleSentence is one usage example attached to a card.
type ExampleSentence struct {
	Text        string `json:"text"`
	Translation string `json:"translation"`
}

// Card represents one vocabulary entry under learning, together with its
// spaced-repetition scheduling state.
//
// Scheduling invariant: NextReview is non-nil exactly when Status is
// CardStatusReviewing. Validate enforces this.
type Card struct {
	ID            uuid.UUID         `json:"id"`
	Word          string            `json:"word"`
	WordMeaning   string            `json:"word_meaning,omitempty"`
	Phrase        string            `json:"phrase,omitempty"`
	PhraseMeaning string            `json:"phrase_meaning,omitempty"`
	LineNumber    int               `json:"line_number,omitempty"`
	Number        int               `json:"number"`
	Examples      []ExampleSentence `json:"examples"`

	Status                   CardStatus `json:"status"`
	Interval                 int        `json:"interval"` // seconds; meaningful while reviewing
	NextReview               *time.Time `json:"next_review,omitempty"`
	ConsecutiveRememberCount int        `json:"consecutive_remember_count"`
	Reviews                  int        `json:"reviews"`
	FirstLearnDate           *time.Time `json:"first_learn_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCard creates a new Card in the "new" status with the given word text
// and base review interval in seconds. It generates a new UUID for the
// card ID and sets the creation/update timestamps.
// Returns an error if validation fails.
func NewCard(word string, baseInterval int) (*Card, error) {
	now := time.Now().UTC()
	card := &Card{
		ID:        uuid.New(),
		Word:      word,
		Status:    CardStatusNew,
		Interval:  baseInterval,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the Card has valid data, including the coupling
// between Status and NextReview. Returns an error if any field fails
// validation.
func (c *Card) Validate() error {
	if c.ID == uuid.Nil {
		return ErrCardIDEmpty
	}

	if c.Word == "" {
		return ErrCardWordEmpty
	}

	if !c.Status.IsValid() {
		return ErrCardStatusInvalid
	}

	if c.Interval < 0 {
		return ErrCardIntervalNegative
	}

	if c.ConsecutiveRememberCount < 0 || c.Reviews < 0 {
		return ErrCardCountNegative
	}

	if c.Status == CardStatusReviewing && c.NextReview == nil {
		return ErrCardNextReviewMissing
	}

	if c.Status != CardStatusReviewing && c.NextReview != nil {
		return ErrCardNextReviewForbidden
	}

	return nil
}

// IsValid reports whether the status is one of the recognized card statuses.
func (s CardStatus) IsValid() bool {
	switch s {
	case CardStatusNew, CardStatusReviewing, CardStatusMastered, CardStatusBad:
		return true
	default:
		return false
	}
}

// IsDue reports whether the card is a reviewing card whose next review
// time has passed at the given instant.
func (c *Card) IsDue(now time.Time) bool {
	return c.Status == CardStatusReviewing && c.NextReview != nil && !c.NextReview.After(now)
}
