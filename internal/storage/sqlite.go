// Package storage provides SQLite-based persistence for level progress.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for progress persistence.
type Store struct {
	db *sql.DB
}

// Completion is the recorded progress for one level.
type Completion struct {
	LevelNumber int
	BestMoves   int
	Completions int
	UpdatedAt   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS progress (
			level_number INTEGER PRIMARY KEY,
			best_moves INTEGER NOT NULL,
			completions INTEGER NOT NULL DEFAULT 1,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
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

// RecordCompletion records that a level was solved in the given number of moves.
// The best (lowest) move count is kept. Returns true if this is a new best.
func (s *Store) RecordCompletion(levelNumber, moves int) (bool, error) {
	prev, found, err := s.Completion(levelNumber)
	if err != nil {
		return false, err
	}

	_, err = s.db.Exec(
		`INSERT INTO progress (level_number, best_moves, completions)
		 VALUES (?, ?, 1)
		 ON CONFLICT(level_number) DO UPDATE SET
			best_moves = MIN(best_moves, excluded.best_moves),
			completions = completions + 1,
			updated_at = CURRENT_TIMESTAMP`,
		levelNumber, moves,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot record completion: %w", err)
	}

	return !found || moves < prev.BestMoves, nil
}

// Completion returns the recorded progress for a level.
// The boolean is false if the level has never been solved.
func (s *Store) Completion(levelNumber int) (Completion, bool, error) {
	row := s.db.QueryRow(
		`SELECT level_number, best_moves, completions, updated_at
		 FROM progress
		 WHERE level_number = ?`,
		levelNumber,
	)

	c, err := scanCompletion(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Completion{}, false, nil
	}
	if err != nil {
		return Completion{}, false, fmt.Errorf("storage: cannot query completion: %w", err)
	}
	return c, true, nil
}

// CompletedLevels returns progress for every solved level, ordered by level number.
func (s *Store) CompletedLevels() ([]Completion, error) {
	rows, err := s.db.Query(
		`SELECT level_number, best_moves, completions, updated_at
		 FROM progress
		 ORDER BY level_number ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query progress: %w", err)
	}
	defer rows.Close()

	var entries []Completion
	for rows.Next() {
		c, err := scanCompletion(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		entries = append(entries, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Reset deletes all recorded progress.
func (s *Store) Reset() error {
	if _, err := s.db.Exec("DELETE FROM progress"); err != nil {
		return fmt.Errorf("storage: cannot reset progress: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCompletion(sc scanner) (Completion, error) {
	var c Completion
	var updatedAt any
	if err := sc.Scan(&c.LevelNumber, &c.BestMoves, &c.Completions, &updatedAt); err != nil {
		return Completion{}, err
	}

	// Parse the datetime - handle both time.Time and string
	switch v := updatedAt.(type) {
	case time.Time:
		c.UpdatedAt = v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			c.UpdatedAt = parsed
		}
	}
	return c, nil
}
