package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/lexi-api/internal/domain"
)

// ReviewLogStore defines the interface for the append-only verdict log.
// Events are written once and only ever aggregated, never mutated.
type ReviewLogStore interface {
	// Append records a review event.
	// Returns validation errors if the event data is invalid.
	Append(ctx context.Context, event *domain.ReviewEvent) error

	// ListByCard retrieves every event recorded for the given card, in
	// insertion order. Returns an empty slice when the card has no events.
	ListByCard(ctx context.Context, cardID uuid.UUID) ([]*domain.ReviewEvent, error)

	// CountBetween counts events whose timestamp lies inside the
	// inclusive [start, end] window.
	CountBetween(ctx context.Context, start, end time.Time) (int, error)
}
