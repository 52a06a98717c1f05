package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/wordsearch/internal/domain"
	"github.com/heartmarshall/wordsearch/internal/puzzle"
	"github.com/heartmarshall/wordsearch/internal/search"
	"github.com/heartmarshall/wordsearch/pkg/ctxutil"
)

// Report is the outcome of solving one puzzle.
type Report struct {
	RunID      uuid.UUID
	SourcePath string
	Digest     string
	Puzzle     domain.Puzzle
	Stats      puzzle.Stats
	Result     domain.Result
	SolvedAt   time.Time
	Duration   time.Duration
}

// Run converts the report into a storable run.
func (r Report) Run() domain.Run {
	grid := r.Puzzle.Grid()
	return domain.Run{
		ID:         r.RunID,
		SourcePath: r.SourcePath,
		Digest:     r.Digest,
		Rows:       grid.Rows(),
		Cols:       grid.Cols(),
		LetterCase: grid.Case(),
		Result:     r.Result,
		CreatedAt:  r.SolvedAt,
	}
}

// Sink receives every successfully solved report.
type Sink interface {
	Name() string
	Publish(ctx context.Context, rep Report) error
}

// Solver runs the parse → search → publish pipeline.
type Solver struct {
	log   *slog.Logger
	opts  puzzle.Options
	sinks []Sink
	now   func() time.Time
}

// NewSolver creates a Solver. Sinks are called in the given order.
func NewSolver(logger *slog.Logger, opts puzzle.Options, sinks ...Sink) *Solver {
	return &Solver{
		log:   logger.With("service", "solver"),
		opts:  opts,
		sinks: sinks,
		now:   time.Now,
	}
}

// SolveFile reads the puzzle at path and solves it.
// Read failures are wrapped I/O errors, not *domain.ParseError.
func (s *Solver) SolveFile(ctx context.Context, path string) (Report, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Report{}, fmt.Errorf("read puzzle: %w", err)
	}
	return s.Solve(ctx, path, raw)
}

// Solve parses raw puzzle text, searches every word and publishes the
// report to each sink in order. The first sink error stops publishing.
// The run ID is taken from ctx when present, otherwise generated.
func (s *Solver) Solve(ctx context.Context, source string, raw []byte) (Report, error) {
	runID, ok := ctxutil.RunIDFromCtx(ctx)
	if !ok {
		runID = uuid.New()
		ctx = ctxutil.WithRunID(ctx, runID)
	}
	log := s.log.With(slog.String("run_id", runID.String()), slog.String("source", source))

	start := s.now()

	parsed, err := puzzle.Parse(string(raw), s.opts)
	if err != nil {
		log.WarnContext(ctx, "puzzle rejected", slog.String("error", err.Error()))
		return Report{}, fmt.Errorf("parse %s: %w", source, err)
	}

	p := parsed.Puzzle
	result := search.Search(p.Grid(), p.Words())

	rep := Report{
		RunID:      runID,
		SourcePath: source,
		Digest:     domain.Digest(raw),
		Puzzle:     p,
		Stats:      parsed.Stats,
		Result:     result,
		SolvedAt:   start.UTC(),
		Duration:   s.now().Sub(start),
	}

	log.InfoContext(ctx, "puzzle solved",
		slog.Int("rows", parsed.Stats.GridRows),
		slog.Int("cols", parsed.Stats.GridCols),
		slog.Int("words", result.Len()),
		slog.Int("found", result.FoundCount()),
		slog.Int("missing", result.Len()-result.FoundCount()),
		slog.Duration("duration", rep.Duration),
	)

	for _, sink := range s.sinks {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		if err := sink.Publish(ctx, rep); err != nil {
			log.ErrorContext(ctx, "sink failed",
				slog.String("sink", sink.Name()),
				slog.String("error", err.Error()),
			)
			return rep, fmt.Errorf("sink %s: %w", sink.Name(), err)
		}
		log.DebugContext(ctx, "sink published", slog.String("sink", sink.Name()))
	}

	return rep, nil
}
