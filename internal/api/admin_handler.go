package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/phrazzld/lexi-api/internal/api/shared"
	"github.com/phrazzld/lexi-api/internal/platform/logger"
	"github.com/phrazzld/lexi-api/internal/redact"
	"github.com/phrazzld/lexi-api/internal/service/scheduler"
)

// AdminHandler handles the administrative mutations that bypass the
// review loop.
type AdminHandler struct {
	admin  scheduler.AdminService
	logger *slog.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService scheduler.AdminService, logger *slog.Logger) *AdminHandler {
	if adminService == nil {
		panic("admin service cannot be nil for AdminHandler")
	}
	if logger == nil {
		panic("logger cannot be nil for AdminHandler")
	}

	return &AdminHandler{
		admin:  adminService,
		logger: logger.With(slog.String("component", "admin_handler")),
	}
}

// MarkWordMastered handles POST /api/mark-word-as-mastered requests.
// Every card matching the word text is mastered and archived.
func (h *AdminHandler) MarkWordMastered(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req MarkWordMasteredRequest
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

	updated, err := h.admin.MarkWordMastered(r.Context(), req.Word)
	if err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to mark word as mastered"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("marked %d cards of %q as mastered", updated, req.Word),
	})
}

// MarkWordBad handles POST /api/mark-word-as-bad requests.
// The card is removed from scheduling permanently.
func (h *AdminHandler) MarkWordBad(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req MarkWordBadRequest
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

	if err := h.admin.MarkCardBad(r.Context(), wordID); err != nil {
		statusCode := MapErrorToStatusCode(err)
		safeMessage := GetSafeErrorMessage(err)
		if statusCode == http.StatusInternalServerError {
			safeMessage = "Failed to mark word as bad"
		}
		shared.RespondWithErrorAndLog(w, r, statusCode, safeMessage, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "word marked as bad",
	})
}
