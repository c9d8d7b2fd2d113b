// Package scores persists game results in a sqlite database.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package scores

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store manages the sqlite database connection.
type Store struct {
	db *sql.DB

	// identifies all scores recorded by this process
	session uuid.UUID
}

// Entry represents a single recorded score.
type Entry struct {
	ID        int64
	Game      string
	Score     int
	Session   uuid.UUID
	CreatedAt time.Time
}

// Open creates or opens a sqlite database at the given path.
// Parent directories are created if needed. Use ":memory:" for a transient database.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("scores: create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("scores: open database: %w", err)
	}

	// a memory database only lives as long as its connection
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("scores: connect to database: %w", err)
	}

	store := &Store{db: db, session: uuid.New()}

	if err := store.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("scores: migration failed: %w", err)
	}

	slog.Debug("Opened score database",
		slog.String("path", path),
		slog.String("session", store.session.String()))

	return store, nil
}

func (s *Store) migrate() error {
	const schema = `
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game TEXT NOT NULL,
			score INTEGER NOT NULL,
			session_id TEXT NOT NULL,
			created_at DATETIME NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game, score DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Session returns the id attached to all scores recorded through this store.
func (s *Store) Session() uuid.UUID {
	return s.session
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}

	return s.db.Close()
}

// Record stores a new score for the given game.
func (s *Store) Record(game string, score int) error {
	_, err := s.db.Exec(
		"INSERT INTO scores (game, score, session_id, created_at) VALUES (?, ?, ?, ?)",
		game, score, s.session.String(), time.Now().UTC(),
	)

	if err != nil {
		return fmt.Errorf("scores: record score for %q: %w", game, err)
	}

	return nil
}

// Top returns the best scores of a game, highest first.
// Scores with the same value are ordered by age, oldest first.
func (s *Store) Top(game string, limit int) ([]Entry, error) {
	rows, err := s.db.Query(`
		SELECT id, game, score, session_id, created_at
		FROM scores
		WHERE game = ?
		ORDER BY score DESC, id ASC
		LIMIT ?`,
		game, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("scores: query top scores: %w", err)
	}

	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var (
			entry   Entry
			session string
		)

		if err := rows.Scan(&entry.ID, &entry.Game, &entry.Score, &session, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("scores: scan row: %w", err)
		}

		entry.Session, err = uuid.Parse(session)
		if err != nil {
			return nil, fmt.Errorf("scores: invalid session id %q: %w", session, err)
		}

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scores: iterate rows: %w", err)
	}

	return entries, nil
}

// Best returns the highest score of a game, or zero if none was recorded yet.
func (s *Store) Best(game string) (int, error) {
	var best sql.NullInt64

	err := s.db.QueryRow("SELECT MAX(score) FROM scores WHERE game = ?", game).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("scores: query best score: %w", err)
	}

	return int(best.Int64), nil
}
