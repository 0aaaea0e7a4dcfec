// Package storage provides SQLite-based persistence for high scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/turkey-shoot/internal/game"
)

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db         *sql.DB
	maxEntries int
}

// ScoreRecord represents a single high score row.
type ScoreRecord struct {
	ID         int64
	Difficulty string
	Name       string
	Score      int
	Level      int
	CreatedAt  time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
// maxEntries caps the table per difficulty; entries beyond the cap are
// pruned on insert.
func Open(dbPath string, maxEntries int) (*Store, error) {
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

	if maxEntries <= 0 {
		maxEntries = 10
	}
	store := &Store{db: db, maxEntries: maxEntries}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS high_scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			difficulty TEXT NOT NULL,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_high_scores_difficulty ON high_scores(difficulty);
		CREATE INDEX IF NOT EXISTS idx_high_scores_top ON high_scores(difficulty, score DESC);
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

// IsHighScore reports whether a score would enter the table for the
// given difficulty: the table is under its cap, or the score beats the
// lowest entry.
func (s *Store) IsHighScore(score int, difficulty string) bool {
	var count int
	if err := s.db.QueryRow(
		"SELECT COUNT(*) FROM high_scores WHERE difficulty = ?",
		difficulty,
	).Scan(&count); err != nil {
		return false
	}
	if count < s.maxEntries {
		return true
	}

	var lowest int
	if err := s.db.QueryRow(
		"SELECT MIN(score) FROM high_scores WHERE difficulty = ?",
		difficulty,
	).Scan(&lowest); err != nil {
		return false
	}
	return score > lowest
}

// AddHighScore inserts a new entry and prunes the table beyond the cap.
func (s *Store) AddHighScore(name string, score int, difficulty string, level int) error {
	if _, err := s.db.Exec(
		"INSERT INTO high_scores (difficulty, name, score, level) VALUES (?, ?, ?, ?)",
		difficulty, name, score, level,
	); err != nil {
		return fmt.Errorf("storage: cannot save score: %w", err)
	}

	// Keep only the top maxEntries per difficulty. Ties are broken by
	// recency so a fresh equal score survives over a stale one.
	if _, err := s.db.Exec(
		`DELETE FROM high_scores
		 WHERE difficulty = ? AND id NOT IN (
			SELECT id FROM high_scores
			WHERE difficulty = ?
			ORDER BY score DESC, created_at DESC, id DESC
			LIMIT ?
		 )`,
		difficulty, difficulty, s.maxEntries,
	); err != nil {
		return fmt.Errorf("storage: cannot prune scores: %w", err)
	}

	return nil
}

// HighScores returns the table for the given difficulty, best first.
// Errors degrade to an empty table; the caller treats scores as
// best-effort decoration.
func (s *Store) HighScores(difficulty string) []game.ScoreEntry {
	records, err := s.TopScores(difficulty, s.maxEntries)
	if err != nil {
		return nil
	}

	entries := make([]game.ScoreEntry, 0, len(records))
	for _, r := range records {
		entries = append(entries, game.ScoreEntry{
			Name:      r.Name,
			Score:     r.Score,
			Level:     r.Level,
			CreatedAt: r.CreatedAt.Format("2006-01-02"),
		})
	}
	return entries
}

// TopScores retrieves the top N entries for the given difficulty,
// ordered by score descending.
func (s *Store) TopScores(difficulty string, limit int) ([]ScoreRecord, error) {
	if limit <= 0 {
		limit = s.maxEntries
	}

	rows, err := s.db.Query(
		`SELECT id, difficulty, name, score, level, created_at
		 FROM high_scores
		 WHERE difficulty = ?
		 ORDER BY score DESC, created_at DESC, id DESC
		 LIMIT ?`,
		difficulty, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var records []ScoreRecord
	for rows.Next() {
		var r ScoreRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Difficulty, &r.Name, &r.Score, &r.Level, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			r.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				r.CreatedAt = parsed
			}
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// ClearScores deletes all entries for the given difficulty.
func (s *Store) ClearScores(difficulty string) error {
	_, err := s.db.Exec("DELETE FROM high_scores WHERE difficulty = ?", difficulty)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

var _ game.ScoreStore = (*Store)(nil)
