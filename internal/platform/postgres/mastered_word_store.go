package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/phrazzld/lexi-api/internal/domain"
	"github.com/phrazzld/lexi-api/internal/platform/logger"
	"github.com/phrazzld/lexi-api/internal/store"
)

// PostgresMasteredWordStore implements the store.MasteredWordStore
// interface using a PostgreSQL database as the storage backend.
type PostgresMasteredWordStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresMasteredWordStore creates a new PostgreSQL implementation of
// the MasteredWordStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresMasteredWordStore(db store.DBTX, logger *slog.Logger) *PostgresMasteredWordStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresMasteredWordStore{
		db:     db,
		logger: logger.With(slog.String("component", "mastered_word_store")),
	}
}

// Ensure PostgresMasteredWordStore implements store.MasteredWordStore interface
var _ store.MasteredWordStore = (*PostgresMasteredWordStore)(nil)

// Upsert implements store.MasteredWordStore.Upsert
// The archive is keyed by the unique (word, phrase) pair; re-archiving
// the same pair replaces the previous entry.
func (s *PostgresMasteredWordStore) Upsert(ctx context.Context, entry *domain.MasteredWord) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if entry == nil || entry.Word == "" {
		return fmt.Errorf("%w: %v", store.ErrInvalidEntity, domain.ErrMasteredWordEmpty)
	}

	examples, err := json.Marshal(entry.Examples)
	if err != nil {
		return fmt.Errorf("failed to marshal archive examples: %w", err)
	}

	query := `
		INSERT INTO mastered_words (word, phrase, word_meaning, phrase_meaning,
			line_number, number, examples, reviews, mastered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (word, phrase) DO UPDATE SET
			word_meaning = EXCLUDED.word_meaning,
			phrase_meaning = EXCLUDED.phrase_meaning,
			line_number = EXCLUDED.line_number,
			number = EXCLUDED.number,
			examples = EXCLUDED.examples,
			reviews = EXCLUDED.reviews,
			mastered_at = EXCLUDED.mastered_at
	`

	_, err = s.db.ExecContext(
		ctx,
		query,
		entry.Word,
		entry.Phrase,
		nullString(entry.WordMeaning),
		nullString(entry.PhraseMeaning),
		entry.LineNumber,
		entry.Number,
		examples,
		entry.Reviews,
		entry.MasteredAt,
	)
	if err != nil {
		log.Error("failed to upsert mastered word",
			slog.String("error", err.Error()),
			slog.String("word", entry.Word),
			slog.String("phrase", entry.Phrase))
		return err
	}

	log.Info("mastered word archived",
		slog.String("word", entry.Word),
		slog.String("phrase", entry.Phrase))
	return nil
}
