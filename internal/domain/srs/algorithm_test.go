package srs

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/lexi-api/internal/domain"
)

func newReviewingCard(interval int, consecutive int) *domain.Card {
	due := time.Now().UTC()
	first := due.Add(-24 * time.Hour)
	return &domain.Card{
		ID:                       uuid.New(),
		Word:                     "test",
		Status:                   domain.CardStatusReviewing,
		Interval:                 interval,
		NextReview:               &due,
		ConsecutiveRememberCount: consecutive,
		FirstLearnDate:           &first,
	}
}

func TestNextStateRemember(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	card := newReviewingCard(300, 2)

	update := nextState(card, domain.VerdictRemember, now, NewDefaultParams())

	if update.Status != domain.CardStatusReviewing {
		t.Errorf("Expected status reviewing, got %q", update.Status)
	}

	if update.Interval != 600 {
		t.Errorf("Expected interval 600, got %d", update.Interval)
	}

	wantDue := now.Add(600 * time.Second)
	if update.NextReview == nil || !update.NextReview.Equal(wantDue) {
		t.Errorf("Expected next review %v, got %v", wantDue, update.NextReview)
	}

	if update.ConsecutiveRememberCount != 3 {
		t.Errorf("Expected consecutive count 3, got %d", update.ConsecutiveRememberCount)
	}

	if update.Archive {
		t.Error("Expected no archive request")
	}
}

func TestNextStateForget(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	card := newReviewingCard(4800, 7)

	update := nextState(card, domain.VerdictForget, now, NewDefaultParams())

	if update.Status != domain.CardStatusReviewing {
		t.Errorf("Expected status reviewing, got %q", update.Status)
	}

	if update.Interval != 300 {
		t.Errorf("Expected interval reset to 300, got %d", update.Interval)
	}

	wantDue := now.Add(300 * time.Second)
	if update.NextReview == nil || !update.NextReview.Equal(wantDue) {
		t.Errorf("Expected next review %v, got %v", wantDue, update.NextReview)
	}

	if update.ConsecutiveRememberCount != 0 {
		t.Errorf("Expected consecutive count reset to 0, got %d", update.ConsecutiveRememberCount)
	}
}

func TestNextStateMaster(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	card := newReviewingCard(1200, 5)

	update := nextState(card, domain.VerdictMaster, now, NewDefaultParams())

	if update.Status != domain.CardStatusMastered {
		t.Errorf("Expected status mastered, got %q", update.Status)
	}

	if update.NextReview != nil {
		t.Errorf("Expected nil next review, got %v", update.NextReview)
	}

	if update.Interval != 1200 {
		t.Errorf("Expected interval unchanged at 1200, got %d", update.Interval)
	}

	if !update.Archive {
		t.Error("Expected archive request on master verdict")
	}

	if update.ConsecutiveRememberCount != 0 {
		t.Errorf("Expected consecutive count reset to 0, got %d", update.ConsecutiveRememberCount)
	}
}

func TestNextStateTwentiethRememberForcesMastery(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	card := newReviewingCard(300, 19)

	update := nextState(card, domain.VerdictRemember, now, NewDefaultParams())

	if update.Status != domain.CardStatusMastered {
		t.Errorf("Expected status mastered at threshold, got %q", update.Status)
	}

	if update.NextReview != nil {
		t.Errorf("Expected nil next review at threshold, got %v", update.NextReview)
	}

	if update.ConsecutiveRememberCount != 20 {
		t.Errorf("Expected consecutive count 20, got %d", update.ConsecutiveRememberCount)
	}

	if !update.Archive {
		t.Error("Expected archive request at mastery threshold")
	}
}

func TestNextStateFirstLearnDateSetOnce(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	params := NewDefaultParams()

	// A card with no first learn date gets one.
	fresh := &domain.Card{
		ID:       uuid.New(),
		Word:     "fresh",
		Status:   domain.CardStatusNew,
		Interval: 300,
	}
	update := nextState(fresh, domain.VerdictRemember, now, params)
	if update.FirstLearnDate == nil || !update.FirstLearnDate.Equal(now) {
		t.Errorf("Expected first learn date %v, got %v", now, update.FirstLearnDate)
	}

	// A card that already has one keeps it untouched.
	seasoned := newReviewingCard(300, 0)
	update = nextState(seasoned, domain.VerdictRemember, now, params)
	if update.FirstLearnDate != nil {
		t.Errorf("Expected no first learn date in update, got %v", update.FirstLearnDate)
	}
}

func TestNextStateCustomParams(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	params := NewParams(ParamsConfig{
		BaseIntervalSeconds: 60,
		GrowthFactor:        3,
		MasteryThreshold:    2,
	})

	card := newReviewingCard(60, 1)
	update := nextState(card, domain.VerdictRemember, now, params)

	if update.Status != domain.CardStatusMastered {
		t.Errorf("Expected mastery at custom threshold, got %q", update.Status)
	}

	card = newReviewingCard(60, 0)
	update = nextState(card, domain.VerdictRemember, now, params)
	if update.Interval != 180 {
		t.Errorf("Expected interval 180 with growth factor 3, got %d", update.Interval)
	}
}
