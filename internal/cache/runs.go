package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// Run records one lint invocation.
type Run struct {
	ID          string     `json:"id"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Files       int        `json:"files"`
	Cached      int        `json:"cached"`
	Diagnostics int        `json:"diagnostics"`
}

// RunStats are the totals written when a run completes.
type RunStats struct {
	Files       int
	Cached      int
	Diagnostics int
}

// StartRun creates a new run record.
func (s *Store) StartRun(ctx context.Context) (*Run, error) {
	if s.db == nil {
		return nil, ErrNotOpen
	}

	run := &Run{
		ID:        generateID(),
		StartedAt: time.Now().UTC(),
	}

	s.logger.Debug("starting run", slog.String("id", run.ID))

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO lint_runs (id, started_at) VALUES (?, ?)`,
		run.ID, formatTime(run.StartedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create run: %w", err)
	}
	return run, nil
}

// CompleteRun marks a run as completed with the given totals.
func (s *Store) CompleteRun(ctx context.Context, id string, stats RunStats) error {
	if s.db == nil {
		return ErrNotOpen
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE lint_runs SET completed_at = ?, files = ?, cached = ?, diagnostics = ? WHERE id = ?`,
		formatTime(time.Now()), stats.Files, stats.Cached, stats.Diagnostics, id,
	)
	if err != nil {
		return fmt.Errorf("failed to complete run: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("run not found: %s", id)
	}
	return nil
}

// DeleteRun removes a run record, used when a run fails before completing.
func (s *Store) DeleteRun(ctx context.Context, id string) error {
	if s.db == nil {
		return ErrNotOpen
	}

	if _, err := s.db.ExecContext(ctx, `DELETE FROM lint_runs WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	return nil
}

// GetRun retrieves a run by ID.
func (s *Store) GetRun(ctx context.Context, id string) (*Run, error) {
	if s.db == nil {
		return nil, ErrNotOpen
	}

	row := s.db.QueryRowContext(ctx,
		`SELECT id, started_at, completed_at, files, cached, diagnostics FROM lint_runs WHERE id = ?`,
		id,
	)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("run not found: %s", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}
	return run, nil
}

// LatestRuns returns up to limit runs, most recent first.
func (s *Store) LatestRuns(ctx context.Context, limit int) ([]*Run, error) {
	if s.db == nil {
		return nil, ErrNotOpen
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, completed_at, files, cached, diagnostics
		 FROM lint_runs ORDER BY started_at DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (*Run, error) {
	var (
		run         Run
		startedAt   string
		completedAt sql.NullString
	)
	if err := row.Scan(&run.ID, &startedAt, &completedAt, &run.Files, &run.Cached, &run.Diagnostics); err != nil {
		return nil, err
	}

	t, err := parseTime(startedAt)
	if err != nil {
		return nil, err
	}
	run.StartedAt = t

	if completedAt.Valid {
		t, err := parseTime(completedAt.String)
		if err != nil {
			return nil, err
		}
		run.CompletedAt = &t
	}
	return &run, nil
}
