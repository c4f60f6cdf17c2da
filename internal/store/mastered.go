package store

import (
	"context"

	"github.com/phrazzld/lexi-api/internal/domain"
)

// MasteredWordStore defines the interface for the mastered-word archive.
type MasteredWordStore interface {
	// Upsert writes an archive entry keyed by (word, phrase). Writing the
	// same key again replaces the previous entry, making archival
	// idempotent regardless of which mastery path triggered it.
	Upsert(ctx context.Context, entry *domain.MasteredWord) error
}
