// Package recency maintains a bounded FIFO log of the most recently
// reviewed words, used only for the "last five words" presentation hint.
package recency

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"github.com/phrazzld/lexi-api/internal/platform/logger"
	"github.com/phrazzld/lexi-api/internal/store"
)

const (
	// Capacity is the maximum number of entries retained. Once full, the
	// oldest entry (smallest order) is evicted before each insert.
	Capacity = 15

	// lookback is how many of the newest entries are examined when
	// building the hint list. One more than the hint size, so the list
	// stays full even when the current word is among the newest entries.
	lookback = 6

	// hintSize is the maximum number of words returned by LastWords.
	hintSize = 5
)

// Tracker is the recency tracker. It owns capacity and eviction policy;
// the underlying store only provides the ordered collection.
type Tracker struct {
	store  store.RecencyStore
	logger *slog.Logger
}

// NewTracker creates a recency tracker over the given store.
// If logger is nil, a default logger will be used.
func NewTracker(recencyStore store.RecencyStore, logger *slog.Logger) *Tracker {
	if recencyStore == nil {
		panic("recencyStore cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &Tracker{
		store:  recencyStore,
		logger: logger.With(slog.String("component", "recency_tracker")),
	}
}

// Record appends a word to the log, evicting the oldest entry first when
// the log is at capacity. Order numbers grow monotonically.
func (t *Tracker) Record(ctx context.Context, word string) error {
	log := logger.FromContextOrDefault(ctx, t.logger)

	count, err := t.store.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count recent words: %w", err)
	}

	if count >= Capacity {
		if err := t.store.DeleteOldest(ctx); err != nil {
			return fmt.Errorf("failed to evict oldest recent word: %w", err)
		}
	}

	maxOrder, err := t.store.MaxOrder(ctx)
	if err != nil {
		return fmt.Errorf("failed to get recent word order: %w", err)
	}

	if err := t.store.Insert(ctx, word, maxOrder+1); err != nil {
		return fmt.Errorf("failed to record recent word: %w", err)
	}

	log.Debug("recent word recorded",
		slog.String("word", word),
		slog.Int64("order", maxOrder+1))
	return nil
}

// LastWords returns up to five of the most recently recorded distinct
// words, newest first, never including the given current word. The list
// is derived from the newest six entries so that excluding the current
// word still leaves up to five hints.
func (t *Tracker) LastWords(ctx context.Context, current string) ([]string, error) {
	recent, err := t.store.ListRecent(ctx, lookback)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent words: %w", err)
	}

	words := lo.Filter(lo.Uniq(recent), func(word string, _ int) bool {
		return word != current
	})

	if len(words) > hintSize {
		words = words[:hintSize]
	}

	return words, nil
}
