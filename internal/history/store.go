// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history keeps a SQLite ledger of conversion attempts so the CLI
// can show what was converted, skipped, or failed across runs.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/officesmith/pkg/types"
)

const (
	defaultMaxResults = 20

	// timeLayout is fixed width so started_at sorts as text.
	timeLayout = "2006-01-02T15:04:05.000000000Z07:00"
)

// Entry is one recorded conversion attempt.
type Entry struct {
	ID        string                 `json:"id"`
	Source    string                 `json:"source"`
	OutputDir string                 `json:"output_dir"`
	PDFPath   string                 `json:"pdf_path,omitempty"`
	Status    types.ConversionStatus `json:"status"`
	Error     string                 `json:"error,omitempty"`
	Started   time.Time              `json:"started"`
	Duration  time.Duration          `json:"duration"`
}

// Store manages the history database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Open opens or creates the history database at cfg.DBPath and ensures the
// schema exists.
func Open(cfg types.HistoryConfig) (*Store, error) {
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("history database path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.DBPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS conversions (
			id TEXT PRIMARY KEY,
			source TEXT NOT NULL,
			output_dir TEXT NOT NULL,
			pdf_path TEXT,
			status TEXT NOT NULL,
			error TEXT,
			started_at TEXT NOT NULL,
			duration_ms INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_started ON conversions(started_at)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_source ON conversions(source)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record stores one job result under a fresh ID.
func (s *Store) Record(ctx context.Context, r types.JobResult) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversions (id, source, output_dir, pdf_path, status, error, started_at, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.NewString(),
		r.Job.Source,
		r.Job.OutputDir,
		r.PDFPath,
		string(r.Status),
		r.Err,
		r.Started.UTC().Format(timeLayout),
		r.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("recording conversion of %s: %w", r.Job.Source, err)
	}
	return nil
}

// Query filters listed entries.
type Query struct {
	// Status limits results to one outcome. Empty matches all.
	Status types.ConversionStatus
	// Source limits results to one source path. Empty matches all.
	Source string
	// Limit caps the number of entries (0 = store default).
	Limit int
}

// Recent returns the newest entries first.
func (s *Store) Recent(ctx context.Context, q Query) ([]Entry, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = s.maxResults
	}

	stmt := `SELECT id, source, output_dir, pdf_path, status, error, started_at, duration_ms
		FROM conversions WHERE 1=1`
	var args []any
	if q.Status != "" {
		stmt += ` AND status = ?`
		args = append(args, string(q.Status))
	}
	if q.Source != "" {
		stmt += ` AND source = ?`
		args = append(args, q.Source)
	}
	stmt += ` ORDER BY started_at DESC, rowid DESC LIMIT ?`
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e        Entry
			status   string
			started  string
			duration int64
			pdfPath  sql.NullString
			errText  sql.NullString
		)
		if err := rows.Scan(&e.ID, &e.Source, &e.OutputDir, &pdfPath, &status, &errText, &started, &duration); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		e.PDFPath = pdfPath.String
		e.Error = errText.String
		e.Status = types.ConversionStatus(status)
		e.Duration = time.Duration(duration) * time.Millisecond
		if e.Started, err = time.Parse(timeLayout, started); err != nil {
			return nil, fmt.Errorf("parsing started_at %q: %w", started, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
