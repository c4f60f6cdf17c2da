package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestNewReviewEvent(t *testing.T) {
	t.Parallel()

	cardID := uuid.New()
	at := time.Now().UTC()

	event, err := NewReviewEvent(cardID, VerdictRemember, at)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if event.ID == uuid.Nil {
		t.Error("Expected non-nil event ID")
	}

	if event.CardID != cardID {
		t.Errorf("Expected card ID %s, got %s", cardID, event.CardID)
	}

	if event.Action != VerdictRemember {
		t.Errorf("Expected action %q, got %q", VerdictRemember, event.Action)
	}

	if !event.Timestamp.Equal(at) {
		t.Errorf("Expected timestamp %v, got %v", at, event.Timestamp)
	}

	// Nil card ID is rejected
	_, err = NewReviewEvent(uuid.Nil, VerdictRemember, at)
	if !errors.Is(err, ErrEventCardIDEmpty) {
		t.Errorf("Expected error %v, got %v", ErrEventCardIDEmpty, err)
	}

	// Unknown verdict is rejected
	_, err = NewReviewEvent(cardID, "shrug", at)
	if !errors.Is(err, ErrEventVerdictInvalid) {
		t.Errorf("Expected error %v, got %v", ErrEventVerdictInvalid, err)
	}
}

func TestReviewVerdictIsValid(t *testing.T) {
	t.Parallel()

	for _, verdict := range []ReviewVerdict{VerdictRemember, VerdictForget, VerdictMaster} {
		if !verdict.IsValid() {
			t.Errorf("Expected verdict %q to be valid", verdict)
		}
	}

	if ReviewVerdict("again").IsValid() {
		t.Error("Expected unknown verdict to be invalid")
	}
}

func TestReviewVerdictIsWin(t *testing.T) {
	t.Parallel()

	if !VerdictRemember.IsWin() {
		t.Error("Expected remember to count as a win")
	}

	if !VerdictMaster.IsWin() {
		t.Error("Expected master to count as a win")
	}

	if VerdictForget.IsWin() {
		t.Error("Expected forget not to count as a win")
	}
}
