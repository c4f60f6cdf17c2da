package store

import "context"

// LexiconStore defines read-only access to the reference lexicon used
// for presentation annotations.
type LexiconStore interface {
	// GetSyllables looks up the syllable annotation for a word.
	// Returns ErrSyllablesNotFound when the lexicon has no entry.
	GetSyllables(ctx context.Context, word string) (string, error)
}
