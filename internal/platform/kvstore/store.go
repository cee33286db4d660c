// Package kvstore provides a small string key-value port with memory,
// Postgres and SQLite backends.
package kvstore

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
)

type Store interface {
	// Get returns the stored value and whether the key exists.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

type memoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemory() Store {
	return &memoryStore{values: make(map[string]string)}
}

func (s *memoryStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *memoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// sqlStore is shared by the Postgres and SQLite backends; only the
// placeholder style differs.
type sqlStore struct {
	db       *sql.DB
	getQuery string
	setQuery string
}

// NewPostgres uses the preferences table created by the migrations.
func NewPostgres(db *sql.DB) Store {
	return &sqlStore{
		db:       db,
		getQuery: `SELECT value FROM preferences WHERE key = $1`,
		setQuery: `
			INSERT INTO preferences (key, value, updated_at)
			VALUES ($1, $2, NOW())
			ON CONFLICT (key) DO UPDATE SET
				value = EXCLUDED.value,
				updated_at = EXCLUDED.updated_at
		`,
	}
}

// NewSQLite creates the preferences table if needed.
func NewSQLite(ctx context.Context, db *sql.DB) (Store, error) {
	const schema = `
		CREATE TABLE IF NOT EXISTS preferences (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("failed to create preferences table: %w", err)
	}

	return &sqlStore{
		db:       db,
		getQuery: `SELECT value FROM preferences WHERE key = ?`,
		setQuery: `
			INSERT INTO preferences (key, value, updated_at)
			VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT (key) DO UPDATE SET
				value = excluded.value,
				updated_at = excluded.updated_at
		`,
	}, nil
}

func (s *sqlStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, s.getQuery, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read key %q: %w", key, err)
	}
	return value, true, nil
}

func (s *sqlStore) Set(ctx context.Context, key, value string) error {
	if _, err := s.db.ExecContext(ctx, s.setQuery, key, value); err != nil {
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}
	return nil
}
