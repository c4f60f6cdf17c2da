package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ReviewVerdict is the learner's response to a presented card.
type ReviewVerdict string

const (
	// VerdictRemember indicates the learner recalled the card.
	VerdictRemember ReviewVerdict = "remember"

	// VerdictForget indicates the learner failed to recall the card.
	VerdictForget ReviewVerdict = "forget"

	// VerdictMaster indicates the learner marked the card as fully learned.
	VerdictMaster ReviewVerdict = "master"
)

// ReviewEvent-specific validation errors
var (
	// ErrEventCardIDEmpty is returned when a review event's card ID is nil.
	ErrEventCardIDEmpty = errors.New("review event card ID cannot be empty")

	// ErrEventVerdictInvalid is returned when a review event carries an
	// unrecognized verdict.
	ErrEventVerdictInvalid = errors.New("review event verdict is invalid")
)

// ReviewEvent is one append-only record of a learner verdict. Events are
// never mutated; they exist solely for aggregation (win rate, daily
// learning counts).
type ReviewEvent struct {
	ID        uuid.UUID     `json:"id"`
	CardID    uuid.UUID     `json:"card_id"`
	Action    ReviewVerdict `json:"action"`
	Timestamp time.Time     `json:"timestamp"`
}

// NewReviewEvent creates a review event for the given card and verdict at
// the given time. Returns an error if validation fails.
func NewReviewEvent(cardID uuid.UUID, action ReviewVerdict, at time.Time) (*ReviewEvent, error) {
	event := &ReviewEvent{
		ID:        uuid.New(),
		CardID:    cardID,
		Action:    action,
		Timestamp: at,
	}

	if err := event.Validate(); err != nil {
		return nil, err
	}

	return event, nil
}

// Validate checks if the ReviewEvent has valid data.
func (e *ReviewEvent) Validate() error {
	if e.CardID == uuid.Nil {
		return ErrEventCardIDEmpty
	}

	if !e.Action.IsValid() {
		return ErrEventVerdictInvalid
	}

	return nil
}

// IsValid reports whether the verdict is one of the recognized verdicts.
func (v ReviewVerdict) IsValid() bool {
	switch v {
	case VerdictRemember, VerdictForget, VerdictMaster:
		return true
	default:
		return false
	}
}

// IsWin reports whether the verdict counts toward the card's win rate.
// Remember and master verdicts are wins, forget is not.
func (v ReviewVerdict) IsWin() bool {
	return v == VerdictRemember || v == VerdictMaster
}
