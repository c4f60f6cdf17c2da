package srs

import (
	"time"

	"github.com/phrazzld/lexi-api/internal/domain"
)

// SchedulingUpdate is the new scheduling state computed for a card after
// a verdict. It is a patch, not a full card: persistence applies it to
// the stored card together with an atomic review-count increment.
type SchedulingUpdate struct {
	Status                   domain.CardStatus
	Interval                 int
	NextReview               *time.Time
	ConsecutiveRememberCount int

	// FirstLearnDate is non-nil only when this verdict is the card's
	// first ever, in which case it must be persisted once.
	FirstLearnDate *time.Time

	// Archive indicates that a mastered-word archive entry must be
	// written as a side effect of this update.
	Archive bool
}

// nextState computes the scheduling update for a card given a verdict.
//
// The base transition table:
//
//	remember -> reviewing, interval doubled, due in the new interval
//	forget   -> reviewing, interval reset to base, due in the base interval
//	master   -> mastered, interval unchanged, never due again
//
// After the table, the consecutive-remember count is incremented on
// remember and reset to zero otherwise. Reaching exactly
// params.MasteryThreshold consecutive remembers overrides the status to
// mastered, clears the next review time and requests archival. An
// explicit master verdict always requests archival.
func nextState(
	card *domain.Card,
	verdict domain.ReviewVerdict,
	now time.Time,
	params *Params,
) *SchedulingUpdate {
	update := &SchedulingUpdate{
		Status:   card.Status,
		Interval: card.Interval,
	}

	switch verdict {
	case domain.VerdictRemember:
		newInterval := card.Interval * params.GrowthFactor
		due := now.Add(time.Duration(newInterval) * time.Second)
		update.Status = domain.CardStatusReviewing
		update.Interval = newInterval
		update.NextReview = &due

	case domain.VerdictForget:
		due := now.Add(time.Duration(params.BaseIntervalSeconds) * time.Second)
		update.Status = domain.CardStatusReviewing
		update.Interval = params.BaseIntervalSeconds
		update.NextReview = &due

	case domain.VerdictMaster:
		update.Status = domain.CardStatusMastered
		update.NextReview = nil
		update.Archive = true
	}

	if card.FirstLearnDate == nil {
		first := now
		update.FirstLearnDate = &first
	}

	if verdict == domain.VerdictRemember {
		update.ConsecutiveRememberCount = card.ConsecutiveRememberCount + 1
		if update.ConsecutiveRememberCount == params.MasteryThreshold {
			update.Status = domain.CardStatusMastered
			update.NextReview = nil
			update.Archive = true
		}
	} else {
		update.ConsecutiveRememberCount = 0
	}

	return update
}
