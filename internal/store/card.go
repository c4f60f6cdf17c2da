package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/lexi-api/internal/domain"
	"github.com/phrazzld/lexi-api/internal/domain/srs"
)

// CardStore defines the interface for card data persistence.
type CardStore interface {
	// Create saves a new card to the store.
	// Returns validation errors if the card data is invalid.
	Create(ctx context.Context, card *domain.Card) error

	// GetByID retrieves a card by its unique ID.
	// Returns ErrCardNotFound if the card does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error)

	// FindNextDue retrieves the most urgently due reviewing card: status
	// reviewing and next_review <= now. Among the overdue set the card
	// with the LATEST next_review wins (descending order). This
	// most-recently-due-first tie-break is deliberate and must be
	// preserved. Returns ErrCardNotFound if no card is due.
	FindNextDue(ctx context.Context, now time.Time) (*domain.Card, error)

	// FindNextDueLearnedBetween behaves like FindNextDue but restricts
	// candidates to cards whose first learn date falls inside
	// [start, end]. Returns ErrCardNotFound if no card matches.
	FindNextDueLearnedBetween(
		ctx context.Context,
		now time.Time,
		start, end time.Time,
	) (*domain.Card, error)

	// FindFirstNew retrieves a card with status new by the store's
	// natural order. No ordering guarantee beyond "a" new card is
	// required. Returns ErrCardNotFound if no new card exists.
	FindFirstNew(ctx context.Context) (*domain.Card, error)

	// FindByWord retrieves every card whose word text matches exactly.
	// Returns an empty slice when nothing matches.
	FindByWord(ctx context.Context, word string) ([]*domain.Card, error)

	// ApplyScheduling writes a verdict's scheduling update to the card
	// and increments the card's review counter atomically with it.
	// Returns ErrCardNotFound if the card does not exist.
	ApplyScheduling(ctx context.Context, id uuid.UUID, update *srs.SchedulingUpdate) error

	// MarkAllMastered bulk-sets every card with the given word text to
	// mastered with no next review time. Returns the number of cards
	// updated; zero matches is not an error.
	MarkAllMastered(ctx context.Context, word string) (int64, error)

	// MarkBad sets a single card to the bad status with no next review
	// time. Idempotent: marking an already-bad card succeeds and leaves
	// the same terminal state. Returns ErrCardNotFound if the card does
	// not exist.
	MarkBad(ctx context.Context, id uuid.UUID) error

	// CountByStatus counts cards with the given status.
	CountByStatus(ctx context.Context, status domain.CardStatus) (int, error)

	// CountDue counts reviewing cards whose next review time has passed.
	CountDue(ctx context.Context, now time.Time) (int, error)

	// WithTx returns a new CardStore instance that uses the provided
	// transaction. The transaction is created and managed by the caller.
	WithTx(tx *sql.Tx) CardStore
}
