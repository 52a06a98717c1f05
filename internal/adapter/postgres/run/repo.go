// Package run implements the puzzle run repository using PostgreSQL.
package run

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/wordsearch/internal/adapter/postgres"
	"github.com/heartmarshall/wordsearch/internal/domain"
)

const (
	entityRun   = "puzzle_run"
	entityMatch = "puzzle_match"

	// DefaultListLimit caps ListRecent when the filter sets no limit.
	DefaultListLimit = 50
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var runColumns = []string{
	"id", "source_path", "digest", "grid_rows", "grid_cols", "letter_case", "created_at",
}

// Repo provides puzzle run persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
	txm  *postgres.TxManager
}

// New creates a new run repository.
func New(pool *pgxpool.Pool, txm *postgres.TxManager) *Repo {
	return &Repo{pool: pool, txm: txm}
}

// ListFilter narrows ListRecent. Zero fields are ignored.
type ListFilter struct {
	Digest     string
	SourcePath string
	Limit      int
}

// Save inserts the run and all of its result entries in one transaction.
func (r *Repo) Save(ctx context.Context, run domain.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	return r.txm.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.pool)

		_, err := q.Exec(ctx,
			`INSERT INTO puzzle_runs (id, source_path, digest, grid_rows, grid_cols, letter_case, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			run.ID, run.SourcePath, run.Digest, run.Rows, run.Cols, string(run.LetterCase), run.CreatedAt,
		)
		if err != nil {
			return postgres.MapError(err, entityRun, run.ID)
		}

		entries := run.Result.Entries()
		if len(entries) == 0 {
			return nil
		}

		batch := &pgx.Batch{}
		for i, e := range entries {
			startCol, startRow, endCol, endRow := matchColumns(e.Match)
			batch.Queue(
				`INSERT INTO puzzle_matches (run_id, position, word, found, start_col, start_row, end_col, end_row)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
				run.ID, i, e.Word, e.Match.Found, startCol, startRow, endCol, endRow,
			)
		}

		results := q.SendBatch(ctx, batch)
		defer results.Close()

		for range batch.Len() {
			if _, err := results.Exec(); err != nil {
				return postgres.MapError(fmt.Errorf("batch exec: %w", err), entityMatch, run.ID)
			}
		}
		return nil
	})
}

// GetByID returns a run with its entries in word-list order.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Run, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	query, args, err := psql.Select(runColumns...).
		From("puzzle_runs").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	run, err := scanRun(q.QueryRow(ctx, query, args...))
	if err != nil {
		return nil, postgres.MapError(err, entityRun, id)
	}

	entries, err := r.entries(ctx, q, id)
	if err != nil {
		return nil, err
	}
	run.Result = domain.NewResult(entries)

	return &run, nil
}

// ListRecent returns runs newest first without their entries.
func (r *Repo) ListRecent(ctx context.Context, filter ListFilter) ([]domain.Run, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}

	b := psql.Select(runColumns...).
		From("puzzle_runs").
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit))
	if filter.Digest != "" {
		b = b.Where(sq.Eq{"digest": filter.Digest})
	}
	if filter.SourcePath != "" {
		b = b.Where(sq.Eq{"source_path": filter.SourcePath})
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, entityRun, uuid.Nil)
	}
	defer rows.Close()

	var runs []domain.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan puzzle_run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, entityRun, uuid.Nil)
	}

	return runs, nil
}

// DeleteOlderThan removes runs created before threshold. Matches are removed
// by cascade. Returns the number of deleted runs.
func (r *Repo) DeleteOlderThan(ctx context.Context, threshold time.Time) (int64, error) {
	query, args, err := psql.Delete("puzzle_runs").
		Where(sq.Lt{"created_at": threshold}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete puzzle_runs: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) entries(ctx context.Context, q postgres.Querier, runID uuid.UUID) ([]domain.Entry, error) {
	query, args, err := psql.Select("word", "found", "start_col", "start_row", "end_col", "end_row").
		From("puzzle_matches").
		Where(sq.Eq{"run_id": runID}).
		OrderBy("position").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, postgres.MapError(err, entityMatch, runID)
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		var (
			word                               string
			found                              bool
			startCol, startRow, endCol, endRow *int32
		)
		if err := rows.Scan(&word, &found, &startCol, &startRow, &endCol, &endRow); err != nil {
			return nil, fmt.Errorf("scan puzzle_match: %w", err)
		}

		m := domain.NotFound
		if found && startCol != nil && startRow != nil && endCol != nil && endRow != nil {
			m = domain.MatchAt(
				domain.Coordinate{Col: int(*startCol), Row: int(*startRow)},
				domain.Coordinate{Col: int(*endCol), Row: int(*endRow)},
			)
		}
		entries = append(entries, domain.Entry{Word: word, Match: m})
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, entityMatch, runID)
	}

	return entries, nil
}

// ---------------------------------------------------------------------------
// Row converters
// ---------------------------------------------------------------------------

func scanRun(row pgx.Row) (domain.Run, error) {
	var (
		run        domain.Run
		letterCase string
	)
	err := row.Scan(&run.ID, &run.SourcePath, &run.Digest, &run.Rows, &run.Cols, &letterCase, &run.CreatedAt)
	if err != nil {
		return domain.Run{}, err
	}
	run.LetterCase = domain.LetterCase(letterCase)
	return run, nil
}

// matchColumns returns nil coordinates for a not-found match.
func matchColumns(m domain.Match) (startCol, startRow, endCol, endRow *int32) {
	if !m.Found {
		return nil, nil, nil, nil
	}
	ptr := func(v int) *int32 {
		n := int32(v)
		return &n
	}
	return ptr(m.Start.Col), ptr(m.Start.Row), ptr(m.End.Col), ptr(m.End.Row)
}
