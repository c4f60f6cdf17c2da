package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/lexi-api/internal/domain"
	"github.com/phrazzld/lexi-api/internal/domain/srs"
	"github.com/phrazzld/lexi-api/internal/platform/logger"
	"github.com/phrazzld/lexi-api/internal/store"
)

// cardColumns is the canonical select list for card rows. Keep in sync
// with scanCard.
const cardColumns = `id, word, word_meaning, phrase, phrase_meaning, line_number, number,
	examples, status, interval_seconds, next_review, consecutive_remember_count,
	reviews, first_learn_date, created_at, updated_at`

// PostgresCardStore implements the store.CardStore interface
// using a PostgreSQL database as the storage backend.
type PostgresCardStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresCardStore creates a new PostgreSQL implementation of the
// CardStore interface. It accepts a database connection or transaction
// that should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCardStore(db store.DBTX, logger *slog.Logger) *PostgresCardStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCardStore{
		db:     db,
		logger: logger.With(slog.String("component", "card_store")),
	}
}

// Ensure PostgresCardStore implements store.CardStore interface
var _ store.CardStore = (*PostgresCardStore)(nil)

// WithTx implements store.CardStore.WithTx
func (s *PostgresCardStore) WithTx(tx *sql.Tx) store.CardStore {
	return &PostgresCardStore{
		db:     tx,
		logger: s.logger,
	}
}

// Create implements store.CardStore.Create
// It saves a new card to the database, handling domain validation.
func (s *PostgresCardStore) Create(ctx context.Context, card *domain.Card) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := card.Validate(); err != nil {
		log.Warn("card validation failed during create",
			slog.String("error", err.Error()),
			slog.String("card_id", card.ID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	examples, err := json.Marshal(card.Examples)
	if err != nil {
		return fmt.Errorf("failed to marshal card examples: %w", err)
	}

	query := `
		INSERT INTO cards (id, word, word_meaning, phrase, phrase_meaning, line_number,
			number, examples, status, interval_seconds, next_review,
			consecutive_remember_count, reviews, first_learn_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		card.ID,
		card.Word,
		nullString(card.WordMeaning),
		card.Phrase, // NOT NULL with empty default; part of the (word, phrase) key
		nullString(card.PhraseMeaning),
		card.LineNumber,
		card.Number,
		examples,
		card.Status,
		card.Interval,
		card.NextReview,
		card.ConsecutiveRememberCount,
		card.Reviews,
		card.FirstLearnDate,
		card.CreatedAt,
		card.UpdatedAt,
	)

	if err != nil {
		log.Error("failed to create card",
			slog.String("error", err.Error()),
			slog.String("card_id", card.ID.String()),
			slog.String("word", card.Word))
		return err
	}

	log.Debug("card created",
		slog.String("card_id", card.ID.String()),
		slog.String("word", card.Word))
	return nil
}

// GetByID implements store.CardStore.GetByID
// Returns store.ErrCardNotFound if the card does not exist.
func (s *PostgresCardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + cardColumns + ` FROM cards WHERE id = $1`

	card, err := scanCard(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("card not found", slog.String("card_id", id.String()))
			return nil, store.ErrCardNotFound
		}
		log.Error("failed to get card by ID",
			slog.String("error", err.Error()),
			slog.String("card_id", id.String()))
		return nil, err
	}

	return card, nil
}

// FindNextDue implements store.CardStore.FindNextDue
// The ORDER BY next_review DESC picks the most recently due card among
// the overdue set, not the most overdue one. This tie-break is part of
// the scheduling contract; do not "fix" it to ascending.
func (s *PostgresCardStore) FindNextDue(ctx context.Context, now time.Time) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + cardColumns + `
		FROM cards
		WHERE status = $1 AND next_review <= $2
		ORDER BY next_review DESC
		LIMIT 1
	`

	card, err := scanCard(s.db.QueryRowContext(ctx, query, domain.CardStatusReviewing, now))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCardNotFound
		}
		log.Error("failed to find next due card", slog.String("error", err.Error()))
		return nil, err
	}

	return card, nil
}

// FindNextDueLearnedBetween implements store.CardStore.FindNextDueLearnedBetween
func (s *PostgresCardStore) FindNextDueLearnedBetween(
	ctx context.Context,
	now time.Time,
	start, end time.Time,
) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + cardColumns + `
		FROM cards
		WHERE status = $1 AND next_review <= $2
			AND first_learn_date >= $3 AND first_learn_date <= $4
		ORDER BY next_review DESC
		LIMIT 1
	`

	card, err := scanCard(
		s.db.QueryRowContext(ctx, query, domain.CardStatusReviewing, now, start, end),
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCardNotFound
		}
		log.Error("failed to find next due card learned in window",
			slog.String("error", err.Error()))
		return nil, err
	}

	return card, nil
}

// FindFirstNew implements store.CardStore.FindFirstNew
// Selection follows the store's natural order; no ordering guarantee is
// part of the contract.
func (s *PostgresCardStore) FindFirstNew(ctx context.Context) (*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + cardColumns + ` FROM cards WHERE status = $1 LIMIT 1`

	card, err := scanCard(s.db.QueryRowContext(ctx, query, domain.CardStatusNew))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCardNotFound
		}
		log.Error("failed to find new card", slog.String("error", err.Error()))
		return nil, err
	}

	return card, nil
}

// FindByWord implements store.CardStore.FindByWord
func (s *PostgresCardStore) FindByWord(ctx context.Context, word string) ([]*domain.Card, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + cardColumns + ` FROM cards WHERE word = $1`

	rows, err := s.db.QueryContext(ctx, query, word)
	if err != nil {
		log.Error("failed to query cards by word",
			slog.String("error", err.Error()),
			slog.String("word", word))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	cards := []*domain.Card{}
	for rows.Next() {
		card, err := scanCard(rows)
		if err != nil {
			log.Error("failed to scan card row", slog.String("error", err.Error()))
			return nil, err
		}
		cards = append(cards, card)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return cards, nil
}

// ApplyScheduling implements store.CardStore.ApplyScheduling
// The scheduling patch and the review-counter increment are applied in a
// single UPDATE so they cannot diverge.
// Returns store.ErrCardNotFound if the card does not exist.
func (s *PostgresCardStore) ApplyScheduling(
	ctx context.Context,
	id uuid.UUID,
	update *srs.SchedulingUpdate,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE cards
		SET status = $1,
			interval_seconds = $2,
			next_review = $3,
			consecutive_remember_count = $4,
			first_learn_date = COALESCE(first_learn_date, $5),
			reviews = reviews + 1,
			updated_at = $6
		WHERE id = $7
	`

	result, err := s.db.ExecContext(
		ctx,
		query,
		update.Status,
		update.Interval,
		update.NextReview,
		update.ConsecutiveRememberCount,
		update.FirstLearnDate,
		time.Now().UTC(),
		id,
	)
	if err != nil {
		log.Error("failed to apply scheduling update",
			slog.String("error", err.Error()),
			slog.String("card_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("card_id", id.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("card not found for scheduling update",
			slog.String("card_id", id.String()))
		return store.ErrCardNotFound
	}

	log.Debug("scheduling update applied",
		slog.String("card_id", id.String()),
		slog.String("status", string(update.Status)),
		slog.Int("interval_seconds", update.Interval))
	return nil
}

// MarkAllMastered implements store.CardStore.MarkAllMastered
func (s *PostgresCardStore) MarkAllMastered(ctx context.Context, word string) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE cards
		SET status = $1, next_review = NULL, updated_at = $2
		WHERE word = $3
	`

	result, err := s.db.ExecContext(ctx, query, domain.CardStatusMastered, time.Now().UTC(), word)
	if err != nil {
		log.Error("failed to mark word as mastered",
			slog.String("error", err.Error()),
			slog.String("word", word))
		return 0, err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("word", word))
		return 0, err
	}

	log.Info("word marked as mastered",
		slog.String("word", word),
		slog.Int64("cards_updated", rowsAffected))
	return rowsAffected, nil
}

// MarkBad implements store.CardStore.MarkBad
// Returns store.ErrCardNotFound if the card does not exist.
func (s *PostgresCardStore) MarkBad(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE cards
		SET status = $1, next_review = NULL, updated_at = $2
		WHERE id = $3
	`

	result, err := s.db.ExecContext(ctx, query, domain.CardStatusBad, time.Now().UTC(), id)
	if err != nil {
		log.Error("failed to mark card as bad",
			slog.String("error", err.Error()),
			slog.String("card_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("card_id", id.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("card not found for bad mark", slog.String("card_id", id.String()))
		return store.ErrCardNotFound
	}

	log.Info("card marked as bad", slog.String("card_id", id.String()))
	return nil
}

// CountByStatus implements store.CardStore.CountByStatus
func (s *PostgresCardStore) CountByStatus(
	ctx context.Context,
	status domain.CardStatus,
) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var count int
	query := `SELECT COUNT(*) FROM cards WHERE status = $1`
	if err := s.db.QueryRowContext(ctx, query, status).Scan(&count); err != nil {
		log.Error("failed to count cards by status",
			slog.String("error", err.Error()),
			slog.String("status", string(status)))
		return 0, err
	}

	return count, nil
}

// CountDue implements store.CardStore.CountDue
func (s *PostgresCardStore) CountDue(ctx context.Context, now time.Time) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var count int
	query := `SELECT COUNT(*) FROM cards WHERE status = $1 AND next_review <= $2`
	err := s.db.QueryRowContext(ctx, query, domain.CardStatusReviewing, now).Scan(&count)
	if err != nil {
		log.Error("failed to count due cards", slog.String("error", err.Error()))
		return 0, err
	}

	return count, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanCard reads one card row in cardColumns order.
func scanCard(row rowScanner) (*domain.Card, error) {
	var (
		card          domain.Card
		wordMeaning   sql.NullString
		phrase        sql.NullString
		phraseMeaning sql.NullString
		lineNumber    sql.NullInt64
		examples      []byte
		status        string
		nextReview    sql.NullTime
		firstLearn    sql.NullTime
	)

	err := row.Scan(
		&card.ID,
		&card.Word,
		&wordMeaning,
		&phrase,
		&phraseMeaning,
		&lineNumber,
		&card.Number,
		&examples,
		&status,
		&card.Interval,
		&nextReview,
		&card.ConsecutiveRememberCount,
		&card.Reviews,
		&firstLearn,
		&card.CreatedAt,
		&card.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	card.WordMeaning = wordMeaning.String
	card.Phrase = phrase.String
	card.PhraseMeaning = phraseMeaning.String
	card.LineNumber = int(lineNumber.Int64)
	card.Status = domain.CardStatus(status)
	if nextReview.Valid {
		t := nextReview.Time
		card.NextReview = &t
	}
	if firstLearn.Valid {
		t := firstLearn.Time
		card.FirstLearnDate = &t
	}
	if len(examples) > 0 {
		if err := json.Unmarshal(examples, &card.Examples); err != nil {
			return nil, fmt.Errorf("failed to unmarshal card examples: %w", err)
		}
	}

	return &card, nil
}

// nullString maps an empty string to SQL NULL.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
