package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/lexi-api/internal/domain"
	"github.com/phrazzld/lexi-api/internal/platform/logger"
	"github.com/phrazzld/lexi-api/internal/store"
)

// PostgresReviewLogStore implements the store.ReviewLogStore interface
// using a PostgreSQL database as the storage backend.
type PostgresReviewLogStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresReviewLogStore creates a new PostgreSQL implementation of
// the ReviewLogStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresReviewLogStore(db store.DBTX, logger *slog.Logger) *PostgresReviewLogStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresReviewLogStore{
		db:     db,
		logger: logger.With(slog.String("component", "review_log_store")),
	}
}

// Ensure PostgresReviewLogStore implements store.ReviewLogStore interface
var _ store.ReviewLogStore = (*PostgresReviewLogStore)(nil)

// Append implements store.ReviewLogStore.Append
func (s *PostgresReviewLogStore) Append(ctx context.Context, event *domain.ReviewEvent) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := event.Validate(); err != nil {
		log.Warn("review event validation failed during append",
			slog.String("error", err.Error()),
			slog.String("card_id", event.CardID.String()))
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO review_events (id, card_id, action, timestamp)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(ctx, query, event.ID, event.CardID, event.Action, event.Timestamp)
	if err != nil {
		log.Error("failed to append review event",
			slog.String("error", err.Error()),
			slog.String("card_id", event.CardID.String()),
			slog.String("action", string(event.Action)))
		return err
	}

	log.Debug("review event appended",
		slog.String("card_id", event.CardID.String()),
		slog.String("action", string(event.Action)))
	return nil
}

// ListByCard implements store.ReviewLogStore.ListByCard
func (s *PostgresReviewLogStore) ListByCard(
	ctx context.Context,
	cardID uuid.UUID,
) ([]*domain.ReviewEvent, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, card_id, action, timestamp
		FROM review_events
		WHERE card_id = $1
		ORDER BY timestamp ASC
	`

	rows, err := s.db.QueryContext(ctx, query, cardID)
	if err != nil {
		log.Error("failed to query review events",
			slog.String("error", err.Error()),
			slog.String("card_id", cardID.String()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	events := []*domain.ReviewEvent{}
	for rows.Next() {
		var event domain.ReviewEvent
		var action string

		err := rows.Scan(&event.ID, &event.CardID, &action, &event.Timestamp)
		if err != nil {
			log.Error("failed to scan review event row", slog.String("error", err.Error()))
			return nil, err
		}

		event.Action = domain.ReviewVerdict(action)
		events = append(events, &event)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return events, nil
}

// CountBetween implements store.ReviewLogStore.CountBetween
func (s *PostgresReviewLogStore) CountBetween(
	ctx context.Context,
	start, end time.Time,
) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var count int
	query := `SELECT COUNT(*) FROM review_events WHERE timestamp >= $1 AND timestamp <= $2`
	if err := s.db.QueryRowContext(ctx, query, start, end).Scan(&count); err != nil {
		log.Error("failed to count review events in window",
			slog.String("error", err.Error()))
		return 0, err
	}

	return count, nil
}
