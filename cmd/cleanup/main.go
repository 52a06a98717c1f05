// Command cleanup deletes stored puzzle runs older than the configured
// retention period (store.retention_days). Matches are removed by cascade.
// It is intended to be invoked by an external cron job.
//
// Flags:
//
//	--dry-run  report the threshold without deleting anything
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/wordsearch/internal/adapter/postgres"
	"github.com/heartmarshall/wordsearch/internal/adapter/postgres/run"
	"github.com/heartmarshall/wordsearch/internal/app"
	"github.com/heartmarshall/wordsearch/internal/config"
)

func main() {
	dryRun := flag.Bool("dry-run", false, "report the threshold without deleting anything")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	threshold := time.Now().Add(-cfg.Store.Retention())

	if *dryRun {
		logger.Info("dry run, nothing deleted",
			slog.Time("threshold", threshold),
			slog.Int("retention_days", cfg.Store.RetentionDays),
		)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	runRepo := run.New(pool, postgres.NewTxManager(pool))

	deleted, err := runRepo.DeleteOlderThan(ctx, threshold)
	if err != nil {
		logger.Error("delete old runs failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	logger.Info("cleanup completed",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
	)
}
