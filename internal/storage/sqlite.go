// Package storage provides SQLite-based persistence for completed maze runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only the run record is stored. The maze itself is never persisted: the
// level's size, path width and seed are enough to regenerate it.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// Run is a single completed maze run.
type Run struct {
	ID        uuid.UUID
	LevelID   string
	Seed      string // Empty for unseeded mazes
	Random    bool   // Started from a "Random" menu entry
	Width     int
	Height    int
	PathWidth int
	Duration  time.Duration
	Steps     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	if dbPath == "" {
		return nil, errors.New("storage: empty database path")
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			level_id TEXT NOT NULL,
			seed TEXT NOT NULL DEFAULT '',
			random INTEGER NOT NULL DEFAULT 0,
			width INTEGER NOT NULL,
			height INTEGER NOT NULL,
			path_width INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			steps INTEGER NOT NULL DEFAULT 0,
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(level_id, duration_ms ASC);
		CREATE INDEX IF NOT EXISTS idx_runs_seed ON runs(seed);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a completed run. A zero ID is replaced with a new UUID and a
// zero CreatedAt with the current time. Returns the stored run.
func (s *Store) SaveRun(run Run) (Run, error) {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, level_id, seed, random, width, height, path_width, duration_ms, steps, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID.String(), run.LevelID, run.Seed, run.Random,
		run.Width, run.Height, run.PathWidth,
		run.Duration.Milliseconds(), run.Steps, run.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return run, fmt.Errorf("storage: cannot save run: %w", err)
	}
	return run, nil
}

// BestRuns retrieves the fastest N runs for the given level.
// Results are ordered by duration ascending.
func (s *Store) BestRuns(levelID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRuns(
		`SELECT id, level_id, seed, random, width, height, path_width, duration_ms, steps, created_at
		 FROM runs
		 WHERE level_id = ?
		 ORDER BY duration_ms ASC, created_at ASC
		 LIMIT ?`,
		levelID, limit,
	)
}

// RunsBySeed retrieves every run played on the given seed, fastest first.
func (s *Store) RunsBySeed(seed string) ([]Run, error) {
	return s.queryRuns(
		`SELECT id, level_id, seed, random, width, height, path_width, duration_ms, steps, created_at
		 FROM runs
		 WHERE seed = ?
		 ORDER BY duration_ms ASC, created_at ASC`,
		seed,
	)
}

// GetRun returns the run with the given ID, or nil if it does not exist.
func (s *Store) GetRun(id uuid.UUID) (*Run, error) {
	runs, err := s.queryRuns(
		`SELECT id, level_id, seed, random, width, height, path_width, duration_ms, steps, created_at
		 FROM runs
		 WHERE id = ?`,
		id.String(),
	)
	if err != nil {
		return nil, err
	}
	if len(runs) == 0 {
		return nil, nil
	}
	return &runs[0], nil
}

// CountRuns returns the number of runs recorded for the level.
func (s *Store) CountRuns(levelID string) (int, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM runs WHERE level_id = ?", levelID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count runs: %w", err)
	}
	return count, nil
}

func (s *Store) queryRuns(query string, args ...any) ([]Run, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r          Run
			id         string
			durationMS int64
			createdAt  int64
		)
		if err := rows.Scan(&id, &r.LevelID, &r.Seed, &r.Random, &r.Width, &r.Height,
			&r.PathWidth, &durationMS, &r.Steps, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		r.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("storage: invalid run id %q: %w", id, err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		r.CreatedAt = time.UnixMilli(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}
