// Package storage provides SQLite-based bookkeeping for preview sessions
// served over SSH.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Session is one finished SSH preview session.
type Session struct {
	ID        int64
	User      string
	Remote    string
	Theme     string // Theme shown when the session ended
	Width     int
	Height    int
	StartedAt time.Time
	Duration  time.Duration
}

// ThemeUsage counts finished sessions per theme.
type ThemeUsage struct {
	Theme    string
	Sessions int
	LastUsed time.Time
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

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user TEXT NOT NULL,
			remote TEXT NOT NULL DEFAULT '',
			theme TEXT NOT NULL DEFAULT '',
			width INTEGER NOT NULL DEFAULT 0,
			height INTEGER NOT NULL DEFAULT 0,
			started_at TEXT NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at DESC);
		CREATE INDEX IF NOT EXISTS idx_sessions_theme ON sessions(theme);
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

// SaveSession records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(sess Session) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO sessions (user, remote, theme, width, height, started_at, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sess.User,
		sess.Remote,
		sess.Theme,
		sess.Width,
		sess.Height,
		sess.StartedAt.UTC().Format(timeLayout),
		sess.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the most recent sessions, newest first.
func (s *Store) RecentSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, user, remote, theme, width, height, started_at, duration_ms
		 FROM sessions
		 ORDER BY started_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var sess Session
		var startedAt string
		var durationMS int64
		if err := rows.Scan(
			&sess.ID,
			&sess.User,
			&sess.Remote,
			&sess.Theme,
			&sess.Width,
			&sess.Height,
			&startedAt,
			&durationMS,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		sess.StartedAt = parseTime(startedAt)
		sess.Duration = time.Duration(durationMS) * time.Millisecond
		sessions = append(sessions, sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return sessions, nil
}

// ThemeUsage returns per-theme session counts, most used first.
func (s *Store) ThemeUsage() ([]ThemeUsage, error) {
	rows, err := s.db.Query(
		`SELECT theme, COUNT(*), MAX(started_at)
		 FROM sessions
		 GROUP BY theme
		 ORDER BY COUNT(*) DESC, theme ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get theme usage: %w", err)
	}
	defer rows.Close()

	var usage []ThemeUsage
	for rows.Next() {
		var u ThemeUsage
		var lastUsed string
		if err := rows.Scan(&u.Theme, &u.Sessions, &lastUsed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan usage row: %w", err)
		}
		u.LastUsed = parseTime(lastUsed)
		usage = append(usage, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return usage, nil
}

// parseTime reads a stored UTC timestamp; unparsable values become zero.
func parseTime(v string) time.Time {
	t, err := time.Parse(timeLayout, v)
	if err != nil {
		return time.Time{}
	}
	return t
}
