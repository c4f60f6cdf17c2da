package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/lexi-api/internal/api/shared"
	"github.com/phrazzld/lexi-api/internal/service/scheduler"
)

// StatsHandler serves learning-progress counters.
type StatsHandler struct {
	scheduler scheduler.Service
	logger    *slog.Logger
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(schedulerService scheduler.Service, logger *slog.Logger) *StatsHandler {
	if schedulerService == nil {
		panic("scheduler service cannot be nil for StatsHandler")
	}
	if logger == nil {
		panic("logger cannot be nil for StatsHandler")
	}

	return &StatsHandler{
		scheduler: schedulerService,
		logger:    logger.With(slog.String("component", "stats_handler")),
	}
}

// GetStats handles GET /api/stats requests.
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.scheduler.Stats(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to load stats", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, stats)
}
