// Package history persists completed solver runs to a SQLite database
// in the data directory, so past solves can be listed and inspected
// from the CLI.
package history

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// dbFileName is the database file created inside the data directory.
const dbFileName = "puzzles.db"

// Store lifecycle errors.
var (
	ErrStoreClosed = errors.New("history store is closed")
	ErrRunNotFound = errors.New("run not found")
)

// Run describes one completed solver invocation. The start configuration
// is stored as its canonical rendering, not as live puzzle state.
type Run struct {
	RunID      string    // UUID v7, generated on record
	Kind       string    // puzzle kind: peg, tile, or ladder
	Start      string    // canonical rendering of the start configuration
	Algorithm  string    // bfs or dfs
	Solved     bool      // whether a solution was found
	Steps      int       // moves in the solution path; 0 when unsolved
	Expanded   int       // configurations expanded during the search
	DurationMS int64     // wall-clock search time in milliseconds
	CreatedAt  time.Time // timestamp of the record
}

// Store is a SQLite-backed collection of solver runs.
type Store struct {
	mu   sync.Mutex
	db   *sql.DB
	open bool
}

// Open creates the data directory if needed, opens the database inside
// it, and applies the schema.
func Open(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, open: true}, nil
}

// Close releases the database connection. Idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil
	}
	s.open = false
	return s.db.Close()
}

// Record inserts a run, generating its UUID v7 ID and creation
// timestamp, and returns the generated ID.
func (s *Store) Record(run Run) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return "", ErrStoreClosed
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate run ID: %w", err)
	}
	run.RunID = id.String()
	run.CreatedAt = time.Now()

	_, err = s.db.Exec(
		`INSERT INTO runs (run_id, kind, start_state, algorithm, solved, steps, expanded, duration_ms, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.RunID, run.Kind, run.Start, run.Algorithm, run.Solved,
		run.Steps, run.Expanded, run.DurationMS, run.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}
	return run.RunID, nil
}

// List returns all recorded runs, newest first.
func (s *Store) List() ([]Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return nil, ErrStoreClosed
	}

	rows, err := s.db.Query(
		`SELECT run_id, kind, start_state, algorithm, solved, steps, expanded, duration_ms, created_at
		 FROM runs ORDER BY created_at DESC, run_id DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// Get returns the run with the given ID.
// Returns ErrRunNotFound if no such run exists.
func (s *Store) Get(runID string) (Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return Run{}, ErrStoreClosed
	}

	row := s.db.QueryRow(
		`SELECT run_id, kind, start_state, algorithm, solved, steps, expanded, duration_ms, created_at
		 FROM runs WHERE run_id = ?`,
		runID,
	)
	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, ErrRunNotFound
	}
	return run, err
}

// scanner abstracts *sql.Row and *sql.Rows for hydration.
type scanner interface {
	Scan(dest ...any) error
}

// scanRun hydrates one runs row into a Run.
func scanRun(sc scanner) (Run, error) {
	var run Run
	var createdAt string
	err := sc.Scan(&run.RunID, &run.Kind, &run.Start, &run.Algorithm,
		&run.Solved, &run.Steps, &run.Expanded, &run.DurationMS, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("scan run: %w", err)
	}
	run.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return Run{}, fmt.Errorf("parse run timestamp: %w", err)
	}
	return run, nil
}
