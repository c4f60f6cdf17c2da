package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/phrazzld/lexi-api/internal/domain"
	"github.com/phrazzld/lexi-api/internal/domain/srs"
	"github.com/phrazzld/lexi-api/internal/platform/logger"
	"github.com/phrazzld/lexi-api/internal/service/recency"
	"github.com/phrazzld/lexi-api/internal/store"
)

// schedulerService implements the Service interface, coordinating card
// selection, the scheduling algorithm, the review log, the recency
// tracker and the mastered-word archive.
type schedulerService struct {
	cards      store.CardStore
	reviewLog  store.ReviewLogStore
	mastered   store.MasteredWordStore
	lexicon    store.LexiconStore
	tracker    *recency.Tracker
	srsService srs.Service
	logger     *slog.Logger
	now        func() time.Time
}

// NewService creates a new scheduler service with the given dependencies.
// If logger is nil, a default logger will be used.
func NewService(
	cards store.CardStore,
	reviewLog store.ReviewLogStore,
	mastered store.MasteredWordStore,
	lexicon store.LexiconStore,
	tracker *recency.Tracker,
	srsService srs.Service,
	logger *slog.Logger,
) Service {
	if cards == nil {
		panic("cards store cannot be nil")
	}
	if reviewLog == nil {
		panic("review log store cannot be nil")
	}
	if mastered == nil {
		panic("mastered word store cannot be nil")
	}
	if lexicon == nil {
		panic("lexicon store cannot be nil")
	}
	if tracker == nil {
		panic("recency tracker cannot be nil")
	}
	if srsService == nil {
		panic("srs service cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &schedulerService{
		cards:      cards,
		reviewLog:  reviewLog,
		mastered:   mastered,
		lexicon:    lexicon,
		tracker:    tracker,
		srsService: srsService,
		logger:     logger.With(slog.String("component", "scheduler_service")),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// NextWord implements the Service interface.
func (s *schedulerService) NextWord(
	ctx context.Context,
	mode ReviewMode,
	session *Session,
) (*WordView, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !mode.IsValid() {
		return nil, ErrInvalidMode
	}

	now := s.now()

	card, err := s.selectCard(ctx, mode, now)
	if err != nil {
		if errors.Is(err, ErrNoCardsRemaining) {
			session.Clear()
			log.Info("no cards remaining", slog.String("mode", string(mode)))
			return nil, err
		}
		return nil, newServiceError("next_word", "card selection failed", err)
	}

	session.Set(card)

	view, err := s.buildView(ctx, card, now)
	if err != nil {
		return nil, newServiceError("next_word", "presentation failed", err)
	}

	log.Debug("card selected",
		slog.String("card_id", card.ID.String()),
		slog.String("word", card.Word),
		slog.String("status", string(card.Status)),
		slog.String("mode", string(mode)))

	return view, nil
}

// selectCard applies the two-stage selection: a due reviewing card first
// (scoped to today's first-learned cards in new_today_only mode), then a
// fallback to an unseen card.
func (s *schedulerService) selectCard(
	ctx context.Context,
	mode ReviewMode,
	now time.Time,
) (*domain.Card, error) {
	var card *domain.Card
	var err error

	switch mode {
	case ReviewModeNewTodayOnly:
		start, end := srs.LearningDayWindow(now)
		card, err = s.cards.FindNextDueLearnedBetween(ctx, now, start, end)
	default:
		card, err = s.cards.FindNextDue(ctx, now)
	}

	if err == nil {
		return card, nil
	}
	if !errors.Is(err, store.ErrCardNotFound) {
		return nil, err
	}

	card, err = s.cards.FindFirstNew(ctx)
	if err != nil {
		if errors.Is(err, store.ErrCardNotFound) {
			return nil, ErrNoCardsRemaining
		}
		return nil, err
	}

	return card, nil
}

// buildView projects a card into its presentation form and fills in the
// cross-cutting fields: win rate from the full event log, recent-word
// hints, today's learning count, syllables and the pending-review count.
func (s *schedulerService) buildView(
	ctx context.Context,
	card *domain.Card,
	now time.Time,
) (*WordView, error) {
	view := &WordView{
		ID:                       card.ID.String(),
		Word:                     card.Word,
		WordMeaning:              card.WordMeaning,
		Phrase:                   card.Phrase,
		PhraseMeaning:            card.PhraseMeaning,
		LineNumber:               card.LineNumber,
		Examples:                 card.Examples,
		Status:                   string(card.Status),
		Reviews:                  card.Reviews,
		Number:                   card.Number,
		ConsecutiveRememberCount: card.ConsecutiveRememberCount,
		FirstLearnDate:           card.FirstLearnDate,
	}
	if view.Examples == nil {
		view.Examples = []domain.ExampleSentence{}
	}

	winRate, err := s.winRate(ctx, card)
	if err != nil {
		return nil, err
	}
	view.WinRate = winRate

	lastWords, err := s.tracker.LastWords(ctx, card.Word)
	if err != nil {
		return nil, err
	}
	view.LastFiveWords = lastWords

	start, end := srs.LearningDayWindow(now)
	todayCount, err := s.reviewLog.CountBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}
	view.TodayLearningCount = todayCount

	syllables, err := s.lexicon.GetSyllables(ctx, card.Word)
	if err != nil {
		if !errors.Is(err, store.ErrSyllablesNotFound) {
			return nil, err
		}
	} else {
		view.Syllables = &syllables
	}

	pending, err := s.cards.CountDue(ctx, now)
	if err != nil {
		return nil, err
	}
	view.PendingReviewCount = pending

	return view, nil
}

// winRate is wins over the card's review counter, where remember and
// master both count as wins. Wins come from scanning the full event
// history. A card with no reviews has a win rate of zero.
func (s *schedulerService) winRate(ctx context.Context, card *domain.Card) (float64, error) {
	if card.Reviews == 0 {
		return 0, nil
	}

	events, err := s.reviewLog.ListByCard(ctx, card.ID)
	if err != nil {
		return 0, err
	}

	wins := 0
	for _, event := range events {
		if event.Action.IsWin() {
			wins++
		}
	}

	return float64(wins) / float64(card.Reviews), nil
}

// SubmitVerdict implements the Service interface.
func (s *schedulerService) SubmitVerdict(
	ctx context.Context,
	session *Session,
	cardID uuid.UUID,
	verdict domain.ReviewVerdict,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if !verdict.IsValid() {
		return ErrInvalidVerdict
	}

	current := session.Current()
	if current == nil {
		return ErrNoCardInFocus
	}
	if current.ID != cardID {
		return ErrCardMismatch
	}

	now := s.now()

	// The recency log records the pre-verdict word so the hint list for
	// the next selection reflects what the learner just saw.
	if err := s.tracker.Record(ctx, current.Word); err != nil {
		return newServiceError("submit_verdict", "failed to record recent word", err)
	}

	event, err := domain.NewReviewEvent(current.ID, verdict, now)
	if err != nil {
		return newServiceError("submit_verdict", "failed to create review event", err)
	}
	if err := s.reviewLog.Append(ctx, event); err != nil {
		return newServiceError("submit_verdict", "failed to append review event", err)
	}

	update, err := s.srsService.ApplyVerdict(current, verdict, now)
	if err != nil {
		return newServiceError("submit_verdict", "failed to compute scheduling update", err)
	}

	if err := s.cards.ApplyScheduling(ctx, current.ID, update); err != nil {
		if errors.Is(err, store.ErrCardNotFound) {
			return ErrCardNotFound
		}
		return newServiceError("submit_verdict", "failed to apply scheduling update", err)
	}

	if update.Archive {
		// Archive from the pre-update snapshot so the entry captures the
		// card as the learner last saw it.
		entry, err := domain.NewMasteredWord(current, now)
		if err != nil {
			return newServiceError("submit_verdict", "failed to build archive entry", err)
		}
		if err := s.mastered.Upsert(ctx, entry); err != nil {
			return newServiceError("submit_verdict", "failed to archive mastered word", err)
		}

		log.Info("card mastered",
			slog.String("card_id", current.ID.String()),
			slog.String("word", current.Word))
	}

	session.Clear()

	log.Debug("verdict processed",
		slog.String("card_id", current.ID.String()),
		slog.String("verdict", string(verdict)),
		slog.String("new_status", string(update.Status)))

	return nil
}

// Stats implements the Service interface.
func (s *schedulerService) Stats(ctx context.Context) (*Stats, error) {
	now := s.now()

	mastered, err := s.cards.CountByStatus(ctx, domain.CardStatusMastered)
	if err != nil {
		return nil, newServiceError("stats", "failed to count mastered cards", err)
	}

	reviewing, err := s.cards.CountByStatus(ctx, domain.CardStatusReviewing)
	if err != nil {
		return nil, newServiceError("stats", "failed to count reviewing cards", err)
	}

	fresh, err := s.cards.CountByStatus(ctx, domain.CardStatusNew)
	if err != nil {
		return nil, newServiceError("stats", "failed to count new cards", err)
	}

	pending, err := s.cards.CountDue(ctx, now)
	if err != nil {
		return nil, newServiceError("stats", "failed to count pending reviews", err)
	}

	return &Stats{
		Mastered:      mastered,
		Reviewing:     reviewing,
		New:           fresh,
		PendingReview: pending,
	}, nil
}
