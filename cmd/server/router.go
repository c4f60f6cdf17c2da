package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/lexi-api/internal/api"
	apiMiddleware "github.com/phrazzld/lexi-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	wordHandler := api.NewWordHandler(app.schedulerService, app.logger)
	adminHandler := api.NewAdminHandler(app.adminService, app.logger)
	statsHandler := api.NewStatsHandler(app.schedulerService, app.logger)
	audioHandler := api.NewAudioHandler(app.ttsClient, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/next-word", wordHandler.GetNextWord)
		r.Post("/submit-response", wordHandler.SubmitResponse)

		r.Post("/mark-word-as-mastered", adminHandler.MarkWordMastered)
		r.Post("/mark-word-as-bad", adminHandler.MarkWordBad)

		r.Get("/stats", statsHandler.GetStats)
		r.Get("/audio", audioHandler.GetAudio)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
