package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/lexi-api/internal/platform/logger"
	"github.com/phrazzld/lexi-api/internal/store"
)

// PostgresLexiconStore implements the store.LexiconStore interface
// against the read-only reference lexicon table.
type PostgresLexiconStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresLexiconStore creates a new PostgreSQL implementation of the
// LexiconStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresLexiconStore(db store.DBTX, logger *slog.Logger) *PostgresLexiconStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresLexiconStore{
		db:     db,
		logger: logger.With(slog.String("component", "lexicon_store")),
	}
}

// Ensure PostgresLexiconStore implements store.LexiconStore interface
var _ store.LexiconStore = (*PostgresLexiconStore)(nil)

// GetSyllables implements store.LexiconStore.GetSyllables
// Returns store.ErrSyllablesNotFound when the lexicon has no entry for
// the word, or when the entry has no syllable annotation.
func (s *PostgresLexiconStore) GetSyllables(ctx context.Context, word string) (string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var syllables sql.NullString
	query := `SELECT syllables FROM lexicon WHERE word = $1`
	err := s.db.QueryRowContext(ctx, query, word).Scan(&syllables)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", store.ErrSyllablesNotFound
		}
		log.Error("failed to look up syllables",
			slog.String("error", err.Error()),
			slog.String("word", word))
		return "", err
	}

	if !syllables.Valid || syllables.String == "" {
		return "", store.ErrSyllablesNotFound
	}

	return syllables.String, nil
}
