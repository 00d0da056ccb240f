// Package sqlite implements the durable storage medium on a local SQLite
// file, one row per collection.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure go sqlite driver

	"healthlog/internal/store"
)

// DB wraps a *sql.DB holding a single state(key, payload) table.
type DB struct {
	sql *sql.DB
}

var _ store.Medium = (*DB)(nil)

// Open creates or opens the database file at path, pings, and ensures the
// state table exists.
func Open(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("create dirs: %w", err)
		}
	}

	s, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.PingContext(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}

	if _, err := s.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS state (
		key TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("create state table: %w", err)
	}
	return &DB{sql: s}, nil
}

// Close closes the underlying database.
func (d *DB) Close() error {
	return d.sql.Close()
}

// Get returns the payload stored under key.
func (d *DB) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var payload []byte
	err := d.sql.QueryRowContext(ctx, "SELECT payload FROM state WHERE key = ?", key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select %q: %w", key, err)
	}
	return payload, true, nil
}

// Set stores payload under key, replacing any previous value.
func (d *DB) Set(ctx context.Context, key string, value []byte) error {
	if _, err := d.sql.ExecContext(ctx,
		"INSERT INTO state(key, payload) VALUES(?, ?) ON CONFLICT(key) DO UPDATE SET payload = excluded.payload",
		key, value); err != nil {
		return fmt.Errorf("upsert %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is a no-op.
func (d *DB) Delete(ctx context.Context, key string) error {
	if _, err := d.sql.ExecContext(ctx, "DELETE FROM state WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}
