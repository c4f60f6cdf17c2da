// Package api provides HTTP handlers for the API.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/phrazzld/lexi-api/internal/api/shared"
	"github.com/phrazzld/lexi-api/internal/domain"
	"github.com/phrazzld/lexi-api/internal/platform/logger"
	"github.com/phrazzld/lexi-api/internal/redact"
	"github.com/phrazzld/lexi-api/internal/service/scheduler"
)

// WordHandler handles the review loop: fetching the next word and
// submitting the learner's verdict. It owns the single review session.
type WordHandler struct {
	scheduler scheduler.Service
	session   *scheduler.Session
	logger    *slog.Logger
}

// NewWordHandler creates a new WordHandler with a fresh session.
func NewWordHandler(schedulerService scheduler.Service, logger *slog.Logger) *WordHandler {
	if schedulerService == nil {
		panic("scheduler service cannot be nil for WordHandler")
	}
	if logger == nil {
		panic("logger cannot be nil for WordHandler")
	}

	return &WordHandler{
		scheduler: schedulerService,
		session:   scheduler.NewSession(),
		logger:    logger.With(slog.String("component", "word_handler")),
	}
}

// GetNextWord handles GET /api/next-word requests.
// It selects the next card for the requested review mode. When the queue
// is exhausted it responds with a completion status instead of an error.
func (h *WordHandler) GetNextWord(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	// A missing review_mode is rejected the same way as an unknown one;
	// the service validates the mode and reports ErrInvalidMode.
	mode := scheduler.ReviewMode(r.URL.Query().Get("review_mode"))

	view, err := h.scheduler.NextWord(r.Context(), mode, h.session)

	if errors.Is(err, scheduler.ErrNoCardsRemaining) {
		log.Debug("review queue exhausted", slog.String("mode", string(mode)))
		shared.RespondWithJSON(w, r, http.StatusOK, StatusResponse{Status: StatusComplete})
		return
	}

	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to get next word"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("serving next word",
		slog.String("word_id", view.ID),
		slog.String("mode", string(mode)))
	shared.RespondWithJSON(w, r, http.StatusOK, view)
}

// SubmitResponse handles POST /api/submit-response requests.
// It applies the learner's verdict to the word currently in focus.
func (h *WordHandler) SubmitResponse(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req SubmitResponseRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("request validation failed", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return
	}

	wordID, err := uuid.Parse(req.WordID)
	if err != nil {
		log.Warn("invalid word ID format", slog.String("word_id", req.WordID))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid word ID format")
		return
	}

	verdict := domain.ReviewVerdict(req.Action)

	if err := h.scheduler.SubmitVerdict(r.Context(), h.session, wordID, verdict); err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to submit response"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	log.Debug("verdict accepted",
		slog.String("word_id", req.WordID),
		slog.String("action", req.Action))
	shared.RespondWithJSON(w, r, http.StatusOK, StatusResponse{Status: StatusComplete})
}
