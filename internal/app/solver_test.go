package app

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordsearch/internal/config"
	"github.com/heartmarshall/wordsearch/internal/domain"
	"github.com/heartmarshall/wordsearch/internal/puzzle"
	"github.com/heartmarshall/wordsearch/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Manual mocks (moq-style with func fields)
// ---------------------------------------------------------------------------

type mockSink struct {
	NameValue   string
	PublishFunc func(ctx context.Context, rep Report) error
}

func (m *mockSink) Name() string { return m.NameValue }

func (m *mockSink) Publish(ctx context.Context, rep Report) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(ctx, rep)
	}
	return nil
}

type mockRunSaver struct {
	SaveFunc func(ctx context.Context, run domain.Run) error
}

func (m *mockRunSaver) Save(ctx context.Context, run domain.Run) error {
	return m.SaveFunc(ctx, run)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

const farmPuzzle = "CAT\nXOX\nDOG\n\ncat\nTAC\ndog\nOO\nbird\n"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func at(c1, r1, c2, r2 int) domain.Match {
	return domain.MatchAt(domain.Coordinate{Col: c1, Row: r1}, domain.Coordinate{Col: c2, Row: r2})
}

func writePuzzle(t *testing.T, name, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	return path
}

// ---------------------------------------------------------------------------
// Solver
// ---------------------------------------------------------------------------

func TestSolver_Solve_HappyPath(t *testing.T) {
	t.Parallel()

	runID := uuid.New()
	ctx := ctxutil.WithRunID(context.Background(), runID)

	s := NewSolver(discardLogger(), puzzle.Options{})
	rep, err := s.Solve(ctx, "farm.pzl", []byte(farmPuzzle))
	require.NoError(t, err)

	assert.Equal(t, runID, rep.RunID)
	assert.Equal(t, "farm.pzl", rep.SourcePath)
	assert.Equal(t, domain.Digest([]byte(farmPuzzle)), rep.Digest)
	assert.Equal(t, 3, rep.Stats.GridRows)
	assert.Equal(t, 5, rep.Stats.Words)
	assert.False(t, rep.SolvedAt.IsZero())

	want := []domain.Entry{
		{Word: "CAT", Match: at(1, 1, 3, 1)},
		{Word: "TAC", Match: at(3, 1, 1, 1)},
		{Word: "DOG", Match: at(1, 3, 3, 3)},
		{Word: "OO", Match: at(2, 2, 2, 3)},
		{Word: "BIRD", Match: domain.NotFound},
	}
	assert.Equal(t, want, rep.Result.Entries())
}

func TestSolver_Solve_GeneratesRunID(t *testing.T) {
	t.Parallel()

	var seen uuid.UUID
	sink := &mockSink{
		NameValue: "probe",
		PublishFunc: func(ctx context.Context, _ Report) error {
			seen, _ = ctxutil.RunIDFromCtx(ctx)
			return nil
		},
	}

	rep, err := NewSolver(discardLogger(), puzzle.Options{}, sink).
		Solve(context.Background(), "farm.pzl", []byte(farmPuzzle))
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, rep.RunID)
	assert.Equal(t, rep.RunID, seen, "sinks should see the run ID in ctx")
}

func TestSolver_Solve_SinkOrder(t *testing.T) {
	t.Parallel()

	var calls []string
	record := func(name string) *mockSink {
		return &mockSink{
			NameValue: name,
			PublishFunc: func(_ context.Context, _ Report) error {
				calls = append(calls, name)
				return nil
			},
		}
	}

	_, err := NewSolver(discardLogger(), puzzle.Options{}, record("a"), record("b"), record("c")).
		Solve(context.Background(), "farm.pzl", []byte(farmPuzzle))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, calls)
}

func TestSolver_Solve_SinkErrorStops(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk full")
	secondCalled := false

	first := &mockSink{
		NameValue:   "file",
		PublishFunc: func(context.Context, Report) error { return boom },
	}
	second := &mockSink{
		NameValue: "store",
		PublishFunc: func(context.Context, Report) error {
			secondCalled = true
			return nil
		},
	}

	rep, err := NewSolver(discardLogger(), puzzle.Options{}, first, second).
		Solve(context.Background(), "farm.pzl", []byte(farmPuzzle))

	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "sink file")
	assert.False(t, secondCalled)
	assert.Equal(t, 5, rep.Result.Len(), "report is returned even when a sink fails")
}

func TestSolver_Solve_ParseError(t *testing.T) {
	t.Parallel()

	called := false
	sink := &mockSink{
		NameValue: "file",
		PublishFunc: func(context.Context, Report) error {
			called = true
			return nil
		},
	}

	_, err := NewSolver(discardLogger(), puzzle.Options{}, sink).
		Solve(context.Background(), "empty.pzl", []byte("  \n\n"))

	require.Error(t, err)
	kind, ok := domain.ParseErrorKindOf(err)
	require.True(t, ok, "expected a parse error, got %v", err)
	assert.Equal(t, domain.KindEmptyInput, kind)
	assert.ErrorIs(t, err, domain.ErrInvalidPuzzle)
	assert.False(t, called)
}

func TestSolver_Solve_RectangularOption(t *testing.T) {
	t.Parallel()

	text := "ABCD\nEFGH\n\nDHX\nCG\n"

	_, err := NewSolver(discardLogger(), puzzle.Options{}).
		Solve(context.Background(), "rect.pzl", []byte(text))
	kind, _ := domain.ParseErrorKindOf(err)
	require.Equal(t, domain.KindMalformedGrid, kind)

	rep, err := NewSolver(discardLogger(), puzzle.Options{AllowRectangular: true}).
		Solve(context.Background(), "rect.pzl", []byte(text))
	require.NoError(t, err)

	m, ok := rep.Result.Lookup("CG")
	require.True(t, ok)
	assert.Equal(t, at(3, 1, 3, 2), m)
	m, _ = rep.Result.Lookup("DHX")
	assert.Equal(t, domain.NotFound, m)
}

func TestSolver_Solve_CanceledContext(t *testing.T) {
	t.Parallel()

	called := false
	sink := &mockSink{
		NameValue: "file",
		PublishFunc: func(context.Context, Report) error {
			called = true
			return nil
		},
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewSolver(discardLogger(), puzzle.Options{}, sink).Solve(ctx, "farm.pzl", []byte(farmPuzzle))
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestSolver_SolveFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := NewSolver(discardLogger(), puzzle.Options{}).
		SolveFile(context.Background(), filepath.Join(t.TempDir(), "nope.pzl"))

	require.ErrorIs(t, err, fs.ErrNotExist)
	_, isParse := domain.ParseErrorKindOf(err)
	assert.False(t, isParse)
}

// ---------------------------------------------------------------------------
// Report / sinks
// ---------------------------------------------------------------------------

func TestReport_Run(t *testing.T) {
	t.Parallel()

	rep, err := NewSolver(discardLogger(), puzzle.Options{}).
		Solve(context.Background(), "farm.pzl", []byte(farmPuzzle))
	require.NoError(t, err)

	run := rep.Run()
	assert.Equal(t, rep.RunID, run.ID)
	assert.Equal(t, "farm.pzl", run.SourcePath)
	assert.Equal(t, 3, run.Rows)
	assert.Equal(t, 3, run.Cols)
	assert.Equal(t, domain.CaseUpper, run.LetterCase)
	assert.Equal(t, rep.Result.Entries(), run.Result.Entries())
	require.NoError(t, run.Validate())
}

func TestFileSink_WritesSibling(t *testing.T) {
	t.Parallel()

	path := writePuzzle(t, "farm.pzl", farmPuzzle)

	_, err := NewSolver(discardLogger(), puzzle.Options{}, FileSink{Extension: ".out"}).
		SolveFile(context.Background(), path)
	require.NoError(t, err)

	got, err := os.ReadFile(filepath.Join(filepath.Dir(path), "farm.out"))
	require.NoError(t, err)
	assert.Equal(t,
		"CAT (1, 1) (3, 1)\nTAC (3, 1) (1, 1)\nDOG (1, 3) (3, 3)\nOO (2, 2) (2, 3)\nBIRD not found\n",
		string(got))
}

func TestStoreSink_Publish(t *testing.T) {
	t.Parallel()

	var saved domain.Run
	var hadDeadline bool
	repo := &mockRunSaver{
		SaveFunc: func(ctx context.Context, run domain.Run) error {
			_, hadDeadline = ctx.Deadline()
			saved = run
			return nil
		},
	}

	rep, err := NewSolver(discardLogger(), puzzle.Options{}, NewStoreSink(repo, time.Minute)).
		Solve(context.Background(), "farm.pzl", []byte(farmPuzzle))
	require.NoError(t, err)

	assert.True(t, hadDeadline)
	assert.Equal(t, rep.RunID, saved.ID)
	assert.Equal(t, rep.Digest, saved.Digest)
	assert.Equal(t, 4, saved.Result.FoundCount())
}

func TestStoreSink_PropagatesError(t *testing.T) {
	t.Parallel()

	repo := &mockRunSaver{
		SaveFunc: func(context.Context, domain.Run) error { return domain.ErrAlreadyExists },
	}

	_, err := NewSolver(discardLogger(), puzzle.Options{}, NewStoreSink(repo, 0)).
		Solve(context.Background(), "farm.pzl", []byte(farmPuzzle))
	require.ErrorIs(t, err, domain.ErrAlreadyExists)
	assert.Contains(t, err.Error(), "sink store")
}

// ---------------------------------------------------------------------------
// Run
// ---------------------------------------------------------------------------

func testConfig() *config.Config {
	return &config.Config{
		Log:    config.LogConfig{Level: "info", Format: "text"},
		Output: config.OutputConfig{Extension: ".output"},
		Store:  config.StoreConfig{RetentionDays: 30, Timeout: time.Second},
	}
}

func TestRun_FileAndStdout(t *testing.T) {
	t.Parallel()

	path := writePuzzle(t, "farm.txt", farmPuzzle)
	var stdout bytes.Buffer

	rep, err := Run(context.Background(), testConfig(), discardLogger(), path, RunOptions{Stdout: &stdout})
	require.NoError(t, err)
	assert.Equal(t, 5, rep.Result.Len())

	file, err := os.ReadFile(filepath.Join(filepath.Dir(path), "farm.output"))
	require.NoError(t, err)
	assert.Equal(t, string(file), stdout.String())
}

func TestRun_SkipOutputFile(t *testing.T) {
	t.Parallel()

	path := writePuzzle(t, "farm.txt", farmPuzzle)

	_, err := Run(context.Background(), testConfig(), discardLogger(), path, RunOptions{SkipOutputFile: true})
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(filepath.Dir(path), "farm.output"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestRun_StoreWithoutDSN(t *testing.T) {
	t.Parallel()

	path := writePuzzle(t, "farm.txt", farmPuzzle)

	_, err := Run(context.Background(), testConfig(), discardLogger(), path, RunOptions{Store: true})
	require.ErrorIs(t, err, ErrStoreNotConfigured)
}
