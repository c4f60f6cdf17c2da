package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/lexi-api/internal/domain"
	"github.com/phrazzld/lexi-api/internal/platform/logger"
	"github.com/phrazzld/lexi-api/internal/store"
)

// adminService implements the AdminService interface. The mutators write
// directly to the card store and archive; they never touch the review
// log, the recency tracker or the consecutive-count logic.
type adminService struct {
	cards    store.CardStore
	mastered store.MasteredWordStore
	logger   *slog.Logger
	now      func() time.Time
}

// NewAdminService creates a new admin service with the given dependencies.
// If logger is nil, a default logger will be used.
func NewAdminService(
	cards store.CardStore,
	mastered store.MasteredWordStore,
	logger *slog.Logger,
) AdminService {
	if cards == nil {
		panic("cards store cannot be nil")
	}
	if mastered == nil {
		panic("mastered word store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &adminService{
		cards:    cards,
		mastered: mastered,
		logger:   logger.With(slog.String("component", "admin_service")),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// MarkWordMastered implements the AdminService interface.
func (s *adminService) MarkWordMastered(ctx context.Context, word string) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Snapshot the matching cards before the bulk update so the archive
	// entries capture their pre-mastery state.
	cards, err := s.cards.FindByWord(ctx, word)
	if err != nil {
		return 0, newServiceError("mark_word_mastered", "failed to find cards by word", err)
	}

	updated, err := s.cards.MarkAllMastered(ctx, word)
	if err != nil {
		return 0, newServiceError("mark_word_mastered", "failed to master cards", err)
	}

	now := s.now()
	for _, card := range cards {
		entry, err := domain.NewMasteredWord(card, now)
		if err != nil {
			return updated, newServiceError("mark_word_mastered", "failed to build archive entry", err)
		}
		if err := s.mastered.Upsert(ctx, entry); err != nil {
			return updated, newServiceError("mark_word_mastered", "failed to archive mastered word", err)
		}
	}

	log.Info("word marked as mastered",
		slog.String("word", word),
		slog.Int64("cards_updated", updated))

	return updated, nil
}

// MarkCardBad implements the AdminService interface.
func (s *adminService) MarkCardBad(ctx context.Context, cardID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.cards.MarkBad(ctx, cardID); err != nil {
		if errors.Is(err, store.ErrCardNotFound) {
			return ErrCardNotFound
		}
		return newServiceError("mark_card_bad", "failed to mark card as bad", err)
	}

	log.Info("card marked as bad", slog.String("card_id", cardID.String()))
	return nil
}
