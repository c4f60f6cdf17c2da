package domain

import (
	"errors"
	"time"
)

// MasteredWord-specific validation errors
var (
	// ErrMasteredWordEmpty is returned when a mastered entry's word text
	// is empty.
	ErrMasteredWordEmpty = errors.New("mastered word cannot be empty")
)

// MasteredWord is a denormalized copy of a card taken at the moment it
// became mastered. Entries are keyed by (Word, Phrase) so that repeated
// mastery of the same card upserts a single archive row, regardless of
// which path (count threshold, explicit master verdict, or bulk
// mark-as-mastered) produced it.
type MasteredWord struct {
	Word          string            `json:"word"`
	WordMeaning   string            `json:"word_meaning,omitempty"`
	Phrase        string            `json:"phrase,omitempty"`
	PhraseMeaning string            `json:"phrase_meaning,omitempty"`
	LineNumber    int               `json:"line_number,omitempty"`
	Number        int               `json:"number"`
	Examples      []ExampleSentence `json:"examples"`
	Reviews       int               `json:"reviews"`
	MasteredAt    time.Time         `json:"mastered_at"`
}

// NewMasteredWord builds an archive entry from a card snapshot. The
// snapshot is taken as-is; the archive always records status mastered
// implicitly, so no status field is kept.
func NewMasteredWord(card *Card, at time.Time) (*MasteredWord, error) {
	if card == nil || card.Word == "" {
		return nil, ErrMasteredWordEmpty
	}

	return &MasteredWord{
		Word:          card.Word,
		WordMeaning:   card.WordMeaning,
		Phrase:        card.Phrase,
		PhraseMeaning: card.PhraseMeaning,
		LineNumber:    card.LineNumber,
		Number:        card.Number,
		Examples:      card.Examples,
		Reviews:       card.Reviews,
		MasteredAt:    at,
	}, nil
}
