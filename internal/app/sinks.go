package app

import (
	"context"
	"io"
	"time"

	"github.com/heartmarshall/wordsearch/internal/domain"
	"github.com/heartmarshall/wordsearch/internal/output"
)

// FileSink writes the result file next to the puzzle.
type FileSink struct {
	Extension string
}

func (FileSink) Name() string { return "file" }

// Publish writes output.PathFor(rep.SourcePath, Extension).
func (s FileSink) Publish(_ context.Context, rep Report) error {
	return output.WriteFile(output.PathFor(rep.SourcePath, s.Extension), rep.Result)
}

// WriterSink renders the result lines to W.
type WriterSink struct {
	W io.Writer
}

func (WriterSink) Name() string { return "writer" }

func (s WriterSink) Publish(_ context.Context, rep Report) error {
	return output.Write(s.W, rep.Result)
}

type runSaver interface {
	Save(ctx context.Context, run domain.Run) error
}

// StoreSink persists the run. Each save is bounded by timeout when it is
// positive.
type StoreSink struct {
	repo    runSaver
	timeout time.Duration
}

// NewStoreSink creates a StoreSink backed by repo.
func NewStoreSink(repo runSaver, timeout time.Duration) *StoreSink {
	return &StoreSink{repo: repo, timeout: timeout}
}

func (*StoreSink) Name() string { return "store" }

func (s *StoreSink) Publish(ctx context.Context, rep Report) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	return s.repo.Save(ctx, rep.Run())
}
