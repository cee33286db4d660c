// Package postgres opens the Postgres connection pool and applies schema
// migrations.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// Open connects and pings, retrying while the database comes up.
func Open(ctx context.Context, url string, attempts int, delay time.Duration, logger *zap.Logger) (*sql.DB, error) {
	if attempts < 1 {
		attempts = 1
	}

	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	for i := 1; ; i++ {
		err = db.PingContext(ctx)
		if err == nil {
			return db, nil
		}
		if i == attempts {
			break
		}

		logger.Info("waiting for database", zap.Int("attempt", i), zap.Int("attempts", attempts), zap.Error(err))
		select {
		case <-ctx.Done():
			_ = db.Close()
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	_ = db.Close()
	return nil, fmt.Errorf("database unreachable after %d attempts: %w", attempts, err)
}

// Migrate applies all pending migrations from dir. An up-to-date schema is
// not an error.
func Migrate(url, dir string) error {
	m, err := migrate.New("file://"+dir, url)
	if err != nil {
		return fmt.Errorf("migration init failed: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration up failed: %w", err)
	}
	return nil
}
