package main

import (
	"database/sql"
	"log/slog"

	"github.com/phrazzld/lexi-api/internal/config"
	"github.com/phrazzld/lexi-api/internal/domain/srs"
	"github.com/phrazzld/lexi-api/internal/platform/postgres"
	"github.com/phrazzld/lexi-api/internal/platform/tts"
	"github.com/phrazzld/lexi-api/internal/service/recency"
	"github.com/phrazzld/lexi-api/internal/service/scheduler"
)

// application holds the wired dependency graph: stores over the shared
// database handle, the domain services on top of them, and the
// platform clients.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	schedulerService scheduler.Service
	adminService     scheduler.AdminService
	ttsClient        *tts.Client
}

// newApplication wires stores and services over the given database handle.
func newApplication(cfg *config.Config, db *sql.DB, logger *slog.Logger) (*application, error) {
	cardStore := postgres.NewPostgresCardStore(db, logger)
	reviewLogStore := postgres.NewPostgresReviewLogStore(db, logger)
	masteredStore := postgres.NewPostgresMasteredWordStore(db, logger)
	recencyStore := postgres.NewPostgresRecencyStore(db, logger)
	lexiconStore := postgres.NewPostgresLexiconStore(db, logger)

	srsService := srs.NewServiceWithParams(srs.NewParams(srs.ParamsConfig{
		BaseIntervalSeconds: cfg.Scheduler.BaseIntervalSeconds,
		GrowthFactor:        cfg.Scheduler.GrowthFactor,
		MasteryThreshold:    cfg.Scheduler.MasteryThreshold,
	}))

	tracker := recency.NewTracker(recencyStore, logger)

	schedulerService := scheduler.NewService(
		cardStore,
		reviewLogStore,
		masteredStore,
		lexiconStore,
		tracker,
		srsService,
		logger,
	)
	adminService := scheduler.NewAdminService(cardStore, masteredStore, logger)

	return &application{
		config:           cfg,
		logger:           logger,
		db:               db,
		schedulerService: schedulerService,
		adminService:     adminService,
		ttsClient:        tts.NewClient(cfg.TTS, logger),
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if err := app.db.Close(); err != nil {
		app.logger.Error("Failed to close database connection", "error", err)
	}
}
