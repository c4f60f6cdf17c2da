package postgres

import (
	"context"
	"log/slog"

	"github.com/phrazzld/lexi-api/internal/platform/logger"
	"github.com/phrazzld/lexi-api/internal/store"
)

// PostgresRecencyStore implements the store.RecencyStore interface
// using a PostgreSQL database as the storage backend.
type PostgresRecencyStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresRecencyStore creates a new PostgreSQL implementation of the
// RecencyStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresRecencyStore(db store.DBTX, logger *slog.Logger) *PostgresRecencyStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresRecencyStore{
		db:     db,
		logger: logger.With(slog.String("component", "recency_store")),
	}
}

// Ensure PostgresRecencyStore implements store.RecencyStore interface
var _ store.RecencyStore = (*PostgresRecencyStore)(nil)

// Count implements store.RecencyStore.Count
func (s *PostgresRecencyStore) Count(ctx context.Context) (int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM recent_words`).Scan(&count); err != nil {
		log.Error("failed to count recent words", slog.String("error", err.Error()))
		return 0, err
	}

	return count, nil
}

// DeleteOldest implements store.RecencyStore.DeleteOldest
func (s *PostgresRecencyStore) DeleteOldest(ctx context.Context) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM recent_words
		WHERE word_order = (SELECT MIN(word_order) FROM recent_words)
	`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		log.Error("failed to delete oldest recent word", slog.String("error", err.Error()))
		return err
	}

	return nil
}

// MaxOrder implements store.RecencyStore.MaxOrder
func (s *PostgresRecencyStore) MaxOrder(ctx context.Context) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// COALESCE turns the NULL that MAX yields on an empty table into 0.
	var order int64
	query := `SELECT COALESCE(MAX(word_order), 0) FROM recent_words`
	if err := s.db.QueryRowContext(ctx, query).Scan(&order); err != nil {
		log.Error("failed to get max recent word order", slog.String("error", err.Error()))
		return 0, err
	}

	return order, nil
}

// Insert implements store.RecencyStore.Insert
func (s *PostgresRecencyStore) Insert(ctx context.Context, word string, order int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `INSERT INTO recent_words (word, word_order) VALUES ($1, $2)`
	if _, err := s.db.ExecContext(ctx, query, word, order); err != nil {
		log.Error("failed to insert recent word",
			slog.String("error", err.Error()),
			slog.String("word", word))
		return err
	}

	return nil
}

// ListRecent implements store.RecencyStore.ListRecent
func (s *PostgresRecencyStore) ListRecent(ctx context.Context, limit int) ([]string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT word FROM recent_words ORDER BY word_order DESC LIMIT $1`

	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		log.Error("failed to list recent words", slog.String("error", err.Error()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	words := []string{}
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			log.Error("failed to scan recent word row", slog.String("error", err.Error()))
			return nil, err
		}
		words = append(words, word)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, err
	}

	return words, nil
}
