// Package history persists one row per batch run plus per-file outcomes in a
// local libSQL database, so reviewers can see what earlier runs produced.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/tursodatabase/go-libsql"
)

// Run file statuses.
const (
	StatusOK         = "ok"
	StatusParseError = "parse_error"
)

// Run is one recorded batch invocation.
type Run struct {
	ID          string    `json:"id"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
	Syntax      string    `json:"syntax"`
	FileCount   int       `json:"file_count"`
	OKCount     int       `json:"ok_count"`
	FailedCount int       `json:"failed_count"`
}

// RunFile is the outcome of one flow file within a run.
type RunFile struct {
	RunID     string `json:"run_id"`
	Path      string `json:"path"`
	FlowLabel string `json:"flow_label,omitempty"`
	Status    string `json:"status"`
	Added     int    `json:"added"`
	Deleted   int    `json:"deleted"`
	Modified  int    `json:"modified"`
	Error     string `json:"error,omitempty"`
}

// Store is the libSQL-backed run history.
type Store struct {
	db *sql.DB
}

// Open opens (and migrates) the history database at the given path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("libsql", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("history: open libsql: %w", err)
	}
	db.SetMaxOpenConns(1)

	// Some PRAGMAs return rows so QueryRow is used throughout.
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	}
	for _, p := range pragmas {
		var result string
		_ = db.QueryRow(p).Scan(&result)
	}

	s := &Store{db: db}
	if err := s.migrate(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error { return s.db.Close() }

// RecordRun inserts the run and its files in one transaction.
func (s *Store) RecordRun(ctx context.Context, run *Run, files []RunFile) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("history: begin: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, finished_at, syntax, file_count, ok_count, failed_count)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.StartedAt, run.FinishedAt, run.Syntax, run.FileCount, run.OKCount, run.FailedCount,
	); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("history: insert run: %w", err)
	}
	for _, f := range files {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO run_files (run_id, path, flow_label, status, added, deleted, modified, error)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			run.ID, f.Path, f.FlowLabel, f.Status, f.Added, f.Deleted, f.Modified, f.Error,
		); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("history: insert run file %s: %w", f.Path, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("history: commit: %w", err)
	}
	return nil
}

// ListRuns returns the most recent runs, newest first.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]*Run, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, started_at, finished_at, syntax, file_count, ok_count, failed_count
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("history: list runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run
	for rows.Next() {
		r := &Run{}
		if err := rows.Scan(&r.ID, &r.StartedAt, &r.FinishedAt, &r.Syntax,
			&r.FileCount, &r.OKCount, &r.FailedCount); err != nil {
			return nil, fmt.Errorf("history: scan run: %w", err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// GetRunFiles returns the per-file outcomes of one run, ordered by path.
func (s *Store) GetRunFiles(ctx context.Context, runID string) ([]*RunFile, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, path, flow_label, status, added, deleted, modified, error
		 FROM run_files WHERE run_id = ? ORDER BY path`, runID)
	if err != nil {
		return nil, fmt.Errorf("history: get run files: %w", err)
	}
	defer rows.Close()

	var files []*RunFile
	for rows.Next() {
		f := &RunFile{}
		if err := rows.Scan(&f.RunID, &f.Path, &f.FlowLabel, &f.Status,
			&f.Added, &f.Deleted, &f.Modified, &f.Error); err != nil {
			return nil, fmt.Errorf("history: scan run file: %w", err)
		}
		files = append(files, f)
	}
	return files, rows.Err()
}
