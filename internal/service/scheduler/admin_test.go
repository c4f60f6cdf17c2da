package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/lexi-api/internal/domain"
	"github.com/phrazzld/lexi-api/internal/store"
)

func newTestAdminService(cards *mockCardStore, mastered *mockMasteredWordStore, now time.Time) *adminService {
	svc := NewAdminService(cards, mastered, nil).(*adminService)
	svc.now = func() time.Time { return now }
	return svc
}

func TestMarkWordMastered_ArchivesEveryMatch(t *testing.T) {
	cards := new(mockCardStore)
	mastered := new(mockMasteredWordStore)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	matches := []*domain.Card{
		{ID: uuid.New(), Word: "apt", Phrase: "apt to change"},
		{ID: uuid.New(), Word: "apt", Phrase: ""},
	}
	cards.On("FindByWord", mock.Anything, "apt").Return(matches, nil)
	cards.On("MarkAllMastered", mock.Anything, "apt").Return(int64(2), nil)
	mastered.On("Upsert", mock.Anything, mock.MatchedBy(func(e *domain.MasteredWord) bool {
		return e.Word == "apt" && e.MasteredAt.Equal(now)
	})).Return(nil).Twice()

	svc := newTestAdminService(cards, mastered, now)
	updated, err := svc.MarkWordMastered(context.Background(), "apt")

	require.NoError(t, err)
	assert.Equal(t, int64(2), updated)
	mastered.AssertExpectations(t)
}

func TestMarkWordMastered_NoMatchesIsNotAnError(t *testing.T) {
	cards := new(mockCardStore)
	mastered := new(mockMasteredWordStore)
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	cards.On("FindByWord", mock.Anything, "ghost").Return([]*domain.Card{}, nil)
	cards.On("MarkAllMastered", mock.Anything, "ghost").Return(int64(0), nil)

	svc := newTestAdminService(cards, mastered, now)
	updated, err := svc.MarkWordMastered(context.Background(), "ghost")

	require.NoError(t, err)
	assert.Zero(t, updated)
	mastered.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestMarkCardBad(t *testing.T) {
	cards := new(mockCardStore)
	mastered := new(mockMasteredWordStore)
	id := uuid.New()

	cards.On("MarkBad", mock.Anything, id).Return(nil)

	svc := newTestAdminService(cards, mastered, time.Now().UTC())
	err := svc.MarkCardBad(context.Background(), id)

	require.NoError(t, err)
	mastered.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestMarkCardBad_NotFound(t *testing.T) {
	cards := new(mockCardStore)
	mastered := new(mockMasteredWordStore)
	id := uuid.New()

	cards.On("MarkBad", mock.Anything, id).Return(store.ErrCardNotFound)

	svc := newTestAdminService(cards, mastered, time.Now().UTC())
	err := svc.MarkCardBad(context.Background(), id)

	assert.ErrorIs(t, err, ErrCardNotFound)
}
