package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/wordsearch/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// BuildRun returns a valid, unsaved run with two entries: CAT found in the
// first row and DOG not found.
func BuildRun() domain.Run {
	suffix := uniqueSuffix()
	return domain.Run{
		ID:         uuid.New(),
		SourcePath: "testdata/" + suffix + ".pzl",
		Digest:     domain.Digest([]byte(suffix)),
		Rows:       3,
		Cols:       3,
		LetterCase: domain.CaseUpper,
		Result: domain.NewResult([]domain.Entry{
			{Word: "CAT", Match: domain.MatchAt(domain.Coordinate{Col: 1, Row: 1}, domain.Coordinate{Col: 3, Row: 1})},
			{Word: "DOG", Match: domain.NotFound},
		}),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

// SeedRun inserts a run row created at createdAt, without matches.
// Returns the inserted domain.Run.
func SeedRun(t *testing.T, pool *pgxpool.Pool, createdAt time.Time) domain.Run {
	t.Helper()

	run := BuildRun()
	run.Result = domain.Result{}
	run.CreatedAt = createdAt.UTC().Truncate(time.Microsecond)

	_, err := pool.Exec(context.Background(),
		`INSERT INTO puzzle_runs (id, source_path, digest, grid_rows, grid_cols, letter_case, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		run.ID, run.SourcePath, run.Digest, run.Rows, run.Cols, string(run.LetterCase), run.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRun insert: %v", err)
	}

	return run
}
