package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver, WAL-friendly

	inkerrors "inkwell/internal/errors"
)

// SQLiteStore persists key-value pairs in a single-table SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the store database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	//nolint:gosec // G301: State directory needs standard permissions
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, inkerrors.New(inkerrors.CodeStorageUnavailable, "create storage directory", err)
	}

	db, err := sql.Open("sqlite", buildSQLiteDSN(path))
	if err != nil {
		return nil, inkerrors.New(inkerrors.CodeStorageUnavailable, "open storage database", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)
	`); err != nil {
		_ = db.Close()
		return nil, inkerrors.New(inkerrors.CodeStorageUnavailable, "initialize storage schema", err)
	}

	return &SQLiteStore{db: db}, nil
}

// buildSQLiteDSN creates a WAL DSN for the given path.
func buildSQLiteDSN(path string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(path),
	}
	q := url.Values{}
	q.Set("_journal_mode", "WAL")
	q.Set("_busy_timeout", "3000")
	u.RawQuery = q.Encode()
	return u.String()
}

func (s *SQLiteStore) Get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("read key %q: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) Set(key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return inkerrors.New(inkerrors.CodeStorageWrite, fmt.Sprintf("write key %q", key), err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
