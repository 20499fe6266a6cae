package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/leapstack-labs/reactlint/pkg/lint"
)

// Get returns the cached diagnostics for path. The second return value is
// false on a miss, including when either hash differs from the stored one.
func (s *Store) Get(ctx context.Context, path, contentHash, rulesetHash string) ([]lint.Diagnostic, bool, error) {
	if s.db == nil {
		return nil, false, ErrNotOpen
	}

	var storedContent, storedRuleset, payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT content_hash, ruleset_hash, diagnostics_json FROM file_results WHERE path = ?`,
		path,
	).Scan(&storedContent, &storedRuleset, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get cached result for %s: %w", path, err)
	}

	if storedContent != contentHash || storedRuleset != rulesetHash {
		s.logger.Debug("cache stale", slog.String("path", path))
		return nil, false, nil
	}

	var diags []lint.Diagnostic
	if err := json.Unmarshal([]byte(payload), &diags); err != nil {
		return nil, false, fmt.Errorf("failed to decode cached result for %s: %w", path, err)
	}
	return diags, true, nil
}

// Put stores the diagnostics for path, replacing any previous entry.
func (s *Store) Put(ctx context.Context, path, contentHash, rulesetHash string, diags []lint.Diagnostic) error {
	if s.db == nil {
		return ErrNotOpen
	}

	if diags == nil {
		diags = []lint.Diagnostic{}
	}
	payload, err := json.Marshal(diags)
	if err != nil {
		return fmt.Errorf("failed to encode result for %s: %w", path, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO file_results (path, content_hash, ruleset_hash, diagnostics_json, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			content_hash = excluded.content_hash,
			ruleset_hash = excluded.ruleset_hash,
			diagnostics_json = excluded.diagnostics_json,
			updated_at = excluded.updated_at`,
		path, contentHash, rulesetHash, string(payload), formatTime(time.Now()),
	)
	if err != nil {
		return fmt.Errorf("failed to store result for %s: %w", path, err)
	}
	return nil
}

// Prune deletes cached results whose path keep rejects and returns the
// number of removed rows.
func (s *Store) Prune(ctx context.Context, keep func(path string) bool) (int64, error) {
	if s.db == nil {
		return 0, ErrNotOpen
	}

	rows, err := s.db.QueryContext(ctx, `SELECT path FROM file_results`)
	if err != nil {
		return 0, fmt.Errorf("failed to list cached paths: %w", err)
	}
	var stale []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			rows.Close()
			return 0, fmt.Errorf("failed to scan cached path: %w", err)
		}
		if !keep(path) {
			stale = append(stale, path)
		}
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return 0, fmt.Errorf("failed to list cached paths: %w", err)
	}
	rows.Close()

	if len(stale) == 0 {
		return 0, nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var removed int64
	for _, path := range stale {
		res, err := tx.ExecContext(ctx, `DELETE FROM file_results WHERE path = ?`, path)
		if err != nil {
			return 0, fmt.Errorf("failed to prune %s: %w", path, err)
		}
		n, _ := res.RowsAffected()
		removed += n
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit prune: %w", err)
	}

	s.logger.Debug("cache pruned", slog.Int64("removed", removed))
	return removed, nil
}

// Clear removes every cached result and run record.
func (s *Store) Clear(ctx context.Context) error {
	if s.db == nil {
		return ErrNotOpen
	}
	for _, stmt := range []string{`DELETE FROM file_results`, `DELETE FROM lint_runs`} {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to clear cache: %w", err)
		}
	}
	return nil
}

// Count returns the number of cached file results.
func (s *Store) Count(ctx context.Context) (int, error) {
	if s.db == nil {
		return 0, ErrNotOpen
	}
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM file_results`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count cached results: %w", err)
	}
	return n, nil
}
