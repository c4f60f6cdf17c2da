package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/lexi-api/internal/api"
	"github.com/phrazzld/lexi-api/internal/service/scheduler"
)

// mockAdminService is a testify mock for scheduler.AdminService.
type mockAdminService struct {
	mock.Mock
}

func (m *mockAdminService) MarkWordMastered(ctx context.Context, word string) (int64, error) {
	args := m.Called(ctx, word)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockAdminService) MarkCardBad(ctx context.Context, cardID uuid.UUID) error {
	args := m.Called(ctx, cardID)
	return args.Error(0)
}

func adminRequest(t *testing.T, path string, body any) *http.Request {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)
	return httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
}

func TestMarkWordMastered(t *testing.T) {
	svc := new(mockAdminService)
	svc.On("MarkWordMastered", mock.Anything, "apt").Return(int64(2), nil)

	req := adminRequest(t, "/api/mark-word-as-mastered", api.MarkWordMasteredRequest{Word: "apt"})
	rec := httptest.NewRecorder()

	api.NewAdminHandler(svc, slog.Default()).MarkWordMastered(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got api.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Contains(t, got.Message, "2 cards")
}

func TestMarkWordMastered_MissingWord(t *testing.T) {
	svc := new(mockAdminService)

	req := adminRequest(t, "/api/mark-word-as-mastered", api.MarkWordMasteredRequest{})
	rec := httptest.NewRecorder()

	api.NewAdminHandler(svc, slog.Default()).MarkWordMastered(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "MarkWordMastered", mock.Anything, mock.Anything)
}

func TestMarkWordBad(t *testing.T) {
	svc := new(mockAdminService)
	id := uuid.New()
	svc.On("MarkCardBad", mock.Anything, id).Return(nil)

	req := adminRequest(t, "/api/mark-word-as-bad", api.MarkWordBadRequest{WordID: id.String()})
	rec := httptest.NewRecorder()

	api.NewAdminHandler(svc, slog.Default()).MarkWordBad(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMarkWordBad_UnknownCard(t *testing.T) {
	svc := new(mockAdminService)
	id := uuid.New()
	svc.On("MarkCardBad", mock.Anything, id).Return(scheduler.ErrCardNotFound)

	req := adminRequest(t, "/api/mark-word-as-bad", api.MarkWordBadRequest{WordID: id.String()})
	rec := httptest.NewRecorder()

	api.NewAdminHandler(svc, slog.Default()).MarkWordBad(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMarkWordBad_MalformedID(t *testing.T) {
	svc := new(mockAdminService)

	req := adminRequest(t, "/api/mark-word-as-bad", api.MarkWordBadRequest{WordID: "nope"})
	rec := httptest.NewRecorder()

	api.NewAdminHandler(svc, slog.Default()).MarkWordBad(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "MarkCardBad", mock.Anything, mock.Anything)
}
