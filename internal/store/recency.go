package store

import "context"

// RecencyStore defines the primitive operations backing the recency
// tracker's bounded FIFO of recently reviewed words. Eviction policy and
// capacity live in the tracker service; this store only provides the
// ordered collection.
type RecencyStore interface {
	// Count returns the number of stored entries.
	Count(ctx context.Context) (int, error)

	// DeleteOldest removes the entry with the smallest order number.
	// Deleting from an empty collection is a no-op.
	DeleteOldest(ctx context.Context) error

	// MaxOrder returns the largest order number currently stored, or
	// zero when the collection is empty.
	MaxOrder(ctx context.Context) (int64, error)

	// Insert stores a word under the given monotonic order number.
	Insert(ctx context.Context, word string, order int64) error

	// ListRecent returns up to limit words ordered by descending order
	// number (newest first).
	ListRecent(ctx context.Context, limit int) ([]string, error)
}
