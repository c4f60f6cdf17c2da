package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewMasteredWord(t *testing.T) {
	t.Parallel()

	at := time.Now().UTC()
	card := &Card{
		ID:            uuid.New(),
		Word:          "zenith",
		WordMeaning:   "highest point",
		Phrase:        "at its zenith",
		PhraseMeaning: "at its peak",
		LineNumber:    42,
		Number:        7,
		Examples:      []ExampleSentence{{Text: "The empire was at its zenith.", Translation: "帝国处于鼎盛时期。"}},
		Reviews:       12,
	}

	entry, err := NewMasteredWord(card, at)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if entry.Word != card.Word {
		t.Errorf("Expected word %q, got %q", card.Word, entry.Word)
	}

	if entry.Phrase != card.Phrase {
		t.Errorf("Expected phrase %q, got %q", card.Phrase, entry.Phrase)
	}

	if entry.Reviews != card.Reviews {
		t.Errorf("Expected reviews %d, got %d", card.Reviews, entry.Reviews)
	}

	if len(entry.Examples) != 1 {
		t.Errorf("Expected 1 example, got %d", len(entry.Examples))
	}

	if !entry.MasteredAt.Equal(at) {
		t.Errorf("Expected mastered at %v, got %v", at, entry.MasteredAt)
	}
}

func TestNewMasteredWordRejectsEmpty(t *testing.T) {
	t.Parallel()

	at := time.Now().UTC()

	if _, err := NewMasteredWord(nil, at); !errors.Is(err, ErrMasteredWordEmpty) {
		t.Errorf("Expected error %v for nil card, got %v", ErrMasteredWordEmpty, err)
	}

	if _, err := NewMasteredWord(&Card{}, at); !errors.Is(err, ErrMasteredWordEmpty) {
		t.Errorf("Expected error %v for empty word, got %v", ErrMasteredWordEmpty, err)
	}
}
