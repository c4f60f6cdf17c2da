package scheduler

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/phrazzld/lexi-api/internal/domain"
	"github.com/phrazzld/lexi-api/internal/domain/srs"
	"github.com/phrazzld/lexi-api/internal/store"
)

// mockCardStore is a testify mock for store.CardStore.
type mockCardStore struct {
	mock.Mock
}

func (m *mockCardStore) Create(ctx context.Context, card *domain.Card) error {
	args := m.Called(ctx, card)
	return args.Error(0)
}

func (m *mockCardStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Card, error) {
	args := m.Called(ctx, id)
	if card, ok := args.Get(0).(*domain.Card); ok {
		return card, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCardStore) FindNextDue(ctx context.Context, now time.Time) (*domain.Card, error) {
	args := m.Called(ctx, now)
	if card, ok := args.Get(0).(*domain.Card); ok {
		return card, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCardStore) FindNextDueLearnedBetween(
	ctx context.Context,
	now time.Time,
	start, end time.Time,
) (*domain.Card, error) {
	args := m.Called(ctx, now, start, end)
	if card, ok := args.Get(0).(*domain.Card); ok {
		return card, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCardStore) FindFirstNew(ctx context.Context) (*domain.Card, error) {
	args := m.Called(ctx)
	if card, ok := args.Get(0).(*domain.Card); ok {
		return card, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCardStore) FindByWord(ctx context.Context, word string) ([]*domain.Card, error) {
	args := m.Called(ctx, word)
	if cards, ok := args.Get(0).([]*domain.Card); ok {
		return cards, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCardStore) ApplyScheduling(
	ctx context.Context,
	id uuid.UUID,
	update *srs.SchedulingUpdate,
) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *mockCardStore) MarkAllMastered(ctx context.Context, word string) (int64, error) {
	args := m.Called(ctx, word)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockCardStore) MarkBad(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockCardStore) CountByStatus(ctx context.Context, status domain.CardStatus) (int, error) {
	args := m.Called(ctx, status)
	return args.Int(0), args.Error(1)
}

func (m *mockCardStore) CountDue(ctx context.Context, now time.Time) (int, error) {
	args := m.Called(ctx, now)
	return args.Int(0), args.Error(1)
}

func (m *mockCardStore) WithTx(tx *sql.Tx) store.CardStore {
	args := m.Called(tx)
	return args.Get(0).(store.CardStore)
}

// mockReviewLogStore is a testify mock for store.ReviewLogStore.
type mockReviewLogStore struct {
	mock.Mock
}

func (m *mockReviewLogStore) Append(ctx context.Context, event *domain.ReviewEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *mockReviewLogStore) ListByCard(
	ctx context.Context,
	cardID uuid.UUID,
) ([]*domain.ReviewEvent, error) {
	args := m.Called(ctx, cardID)
	if events, ok := args.Get(0).([]*domain.ReviewEvent); ok {
		return events, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockReviewLogStore) CountBetween(ctx context.Context, start, end time.Time) (int, error) {
	args := m.Called(ctx, start, end)
	return args.Int(0), args.Error(1)
}

// mockMasteredWordStore is a testify mock for store.MasteredWordStore.
type mockMasteredWordStore struct {
	mock.Mock
}

func (m *mockMasteredWordStore) Upsert(ctx context.Context, entry *domain.MasteredWord) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

// mockLexiconStore is a testify mock for store.LexiconStore.
type mockLexiconStore struct {
	mock.Mock
}

func (m *mockLexiconStore) GetSyllables(ctx context.Context, word string) (string, error) {
	args := m.Called(ctx, word)
	return args.String(0), args.Error(1)
}

// mockRecencyStore is a testify mock for store.RecencyStore.
type mockRecencyStore struct {
	mock.Mock
}

func (m *mockRecencyStore) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *mockRecencyStore) DeleteOldest(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockRecencyStore) MaxOrder(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRecencyStore) Insert(ctx context.Context, word string, order int64) error {
	args := m.Called(ctx, word, order)
	return args.Error(0)
}

func (m *mockRecencyStore) ListRecent(ctx context.Context, limit int) ([]string, error) {
	args := m.Called(ctx, limit)
	if words, ok := args.Get(0).([]string); ok {
		return words, args.Error(1)
	}
	return nil, args.Error(1)
}
