package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phrazzld/lexi-api/internal/api"
	"github.com/phrazzld/lexi-api/internal/platform/tts"
	"github.com/phrazzld/lexi-api/internal/service/scheduler"
	"github.com/phrazzld/lexi-api/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid mode", scheduler.ErrInvalidMode, http.StatusBadRequest},
		{"invalid verdict", scheduler.ErrInvalidVerdict, http.StatusBadRequest},
		{"card mismatch", scheduler.ErrCardMismatch, http.StatusBadRequest},
		{"invalid entity", store.ErrInvalidEntity, http.StatusBadRequest},
		{"no card in focus", scheduler.ErrNoCardInFocus, http.StatusConflict},
		{"card not found", scheduler.ErrCardNotFound, http.StatusNotFound},
		{"store not found", store.ErrCardNotFound, http.StatusNotFound},
		{"tts unavailable", tts.ErrUnavailable, http.StatusBadGateway},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
		{
			"wrapped sentinel",
			fmt.Errorf("submit failed: %w", scheduler.ErrNoCardInFocus),
			http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, api.MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage_NeverLeaksInternals(t *testing.T) {
	internal := errors.New("pq: connection refused on 10.0.0.5:5432")

	msg := api.GetSafeErrorMessage(internal)

	assert.NotContains(t, msg, "10.0.0.5")
	assert.Equal(t, "An unexpected error occurred", msg)

	assert.Equal(t, "An unexpected error occurred", api.GetSafeErrorMessage(nil))
}

func TestSanitizeValidationError(t *testing.T) {
	raw := errors.New(
		"Key: 'SubmitResponseRequest.Action' Error:Field validation for 'Action' failed on the 'oneof' tag",
	)

	assert.Equal(t, "Invalid Action: invalid value", api.SanitizeValidationError(raw))

	assert.Equal(t, "Validation error", api.SanitizeValidationError(errors.New("boom")))
}
