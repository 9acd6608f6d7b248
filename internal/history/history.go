// Package history keeps an observational log of search requests. The
// pipeline itself is stateless; this store only records what was asked and
// how it went, for the activity view.
package history

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists search log entries in SQLite.
type Store struct {
	conn *sql.DB
}

// Entry is one recorded search.
type Entry struct {
	ID          int64     `json:"id"`
	Query       string    `json:"query"`
	ResultCount int       `json:"resultCount"`
	Error       string    `json:"error,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func New(path string) (*Store, error) {
	dsn := fmt.Sprintf("%s?_pragma=journal_mode(WAL)", path)
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	conn.SetMaxOpenConns(2)

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	stmt := `CREATE TABLE IF NOT EXISTS searches (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		query        TEXT    NOT NULL,
		result_count INTEGER NOT NULL DEFAULT 0,
		error        TEXT    NOT NULL DEFAULT '',
		created_at   TEXT    NOT NULL DEFAULT (datetime('now'))
	)`
	if _, err := s.conn.Exec(stmt); err != nil {
		return fmt.Errorf("exec migration: %w", err)
	}
	return nil
}

// Record logs one search. errMsg is empty for successful requests.
func (s *Store) Record(query string, resultCount int, errMsg string) error {
	_, err := s.conn.Exec(
		`INSERT INTO searches (query, result_count, error) VALUES (?, ?, ?)`,
		query, resultCount, errMsg,
	)
	return err
}

// Recent returns the latest entries, newest first.
func (s *Store) Recent(limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.conn.Query(
		`SELECT id, query, result_count, error, created_at
		 FROM searches ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var createdAt string
		if err := rows.Scan(&e.ID, &e.Query, &e.ResultCount, &e.Error, &createdAt); err != nil {
			return nil, err
		}
		e.CreatedAt, _ = time.Parse("2006-01-02 15:04:05", createdAt)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
