// Package main implements the card import tool. It reads a JSON file of
// vocabulary entries and loads them into the cards table as new cards,
// skipping (word, phrase) pairs that are already present.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/phrazzld/lexi-api/internal/config"
	"github.com/phrazzld/lexi-api/internal/domain"
	"github.com/phrazzld/lexi-api/internal/domain/srs"
	"github.com/phrazzld/lexi-api/internal/platform/logger"
	"github.com/phrazzld/lexi-api/internal/platform/postgres"
	"github.com/phrazzld/lexi-api/internal/store"
)

// importEntry is one record of the import file.
type importEntry struct {
	Word          string                   `json:"word"`
	WordMeaning   string                   `json:"word_meaning"`
	Phrase        string                   `json:"phrase"`
	PhraseMeaning string                   `json:"phrase_meaning"`
	LineNumber    int                      `json:"line_number"`
	Number        int                      `json:"number"`
	Examples      []domain.ExampleSentence `json:"examples"`
}

func main() {
	inputPath := flag.String("input", "", "path to the JSON import file")
	dryRun := flag.Bool("dry-run", false, "parse and validate without writing")
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("missing required -input flag")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		log.Fatalf("failed to set up logger: %v", err)
	}

	entries, err := readEntries(*inputPath)
	if err != nil {
		log.Fatalf("failed to read import file: %v", err)
	}

	appLogger.Info("import file parsed",
		"path", *inputPath,
		"entries", len(entries))

	if *dryRun {
		fmt.Printf("dry run: %d entries parsed\n", len(entries))
		return
	}

	db, err := openDatabase(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer func() { _ = db.Close() }()

	cardStore := postgres.NewPostgresCardStore(db, appLogger)

	ctx := logger.WithLogger(context.Background(), appLogger)
	imported, skipped := 0, 0

	// The whole file goes in or nothing does; a failed entry must not
	// leave a partial import behind.
	err = store.RunInTransaction(ctx, db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := cardStore.WithTx(tx)

		for _, entry := range entries {
			exists, err := hasCard(ctx, txStore, entry)
			if err != nil {
				return fmt.Errorf("failed to check existing cards for %q: %w", entry.Word, err)
			}
			if exists {
				skipped++
				continue
			}

			card, err := entryToCard(entry)
			if err != nil {
				return fmt.Errorf("invalid entry %q: %w", entry.Word, err)
			}

			if err := txStore.Create(ctx, card); err != nil {
				return fmt.Errorf("failed to import %q: %w", entry.Word, err)
			}
			imported++
		}

		return nil
	})
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}

	appLogger.Info("import completed",
		"imported", imported,
		"skipped", skipped)
	fmt.Printf("imported %d cards, skipped %d existing\n", imported, skipped)
}

func readEntries(path string) ([]importEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var entries []importEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse import file: %w", err)
	}

	return entries, nil
}

// hasCard reports whether a card with the same word and phrase already
// exists, so re-running the import is safe.
func hasCard(ctx context.Context, cards store.CardStore, entry importEntry) (bool, error) {
	existing, err := cards.FindByWord(ctx, entry.Word)
	if err != nil {
		return false, err
	}

	for _, card := range existing {
		if card.Phrase == entry.Phrase {
			return true, nil
		}
	}
	return false, nil
}

func entryToCard(entry importEntry) (*domain.Card, error) {
	now := time.Now().UTC()
	card := &domain.Card{
		ID:            uuid.New(),
		Word:          entry.Word,
		WordMeaning:   entry.WordMeaning,
		Phrase:        entry.Phrase,
		PhraseMeaning: entry.PhraseMeaning,
		LineNumber:    entry.LineNumber,
		Number:        entry.Number,
		Examples:      entry.Examples,
		Status:        domain.CardStatusNew,
		Interval:      srs.NewDefaultParams().BaseIntervalSeconds,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}
	return card, nil
}

func openDatabase(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
