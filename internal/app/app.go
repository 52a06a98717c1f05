package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/heartmarshall/wordsearch/internal/adapter/postgres"
	"github.com/heartmarshall/wordsearch/internal/adapter/postgres/run"
	"github.com/heartmarshall/wordsearch/internal/config"
	"github.com/heartmarshall/wordsearch/internal/puzzle"
)

// ErrStoreNotConfigured is returned when persistence is requested without a
// database DSN.
var ErrStoreNotConfigured = errors.New("store requires database.dsn")

// RunOptions are per-invocation overrides on top of the configuration.
type RunOptions struct {
	SkipOutputFile bool
	Store          bool
	// Stdout receives the result lines when non-nil.
	Stdout io.Writer
}

// Run is the application entry point for solving one puzzle file. It wires
// the sinks from configuration and options, opens the database pool only
// when the store is used, and solves path.
//
// Sink order: result file, Stdout, store.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger, path string, opts RunOptions) (Report, error) {
	logger.Debug("starting wordsearch",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	var sinks []Sink
	if !cfg.Output.Skip && !opts.SkipOutputFile {
		sinks = append(sinks, FileSink{Extension: cfg.Output.Extension})
	}
	if opts.Stdout != nil {
		sinks = append(sinks, WriterSink{W: opts.Stdout})
	}

	if cfg.Store.Enabled || opts.Store {
		if cfg.Database.DSN == "" {
			return Report{}, ErrStoreNotConfigured
		}
		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return Report{}, fmt.Errorf("connect to database: %w", err)
		}
		defer pool.Close()

		repo := run.New(pool, postgres.NewTxManager(pool))
		sinks = append(sinks, NewStoreSink(repo, cfg.Store.Timeout))
	}

	solver := NewSolver(logger, puzzle.Options{AllowRectangular: cfg.Puzzle.AllowRectangular}, sinks...)
	return solver.SolveFile(ctx, path)
}
