package contact

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Save(ctx context.Context, s *Submission) error
}

type postgresRepo struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &postgresRepo{db: db}
}

func (r *postgresRepo) Save(ctx context.Context, s *Submission) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO contact_submissions (id, name, email, phone, audience, message, notified, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			notified = $7
	`
	_, err := r.db.ExecContext(ctx, query,
		s.ID, s.Name, s.Email, s.Phone, s.Audience, s.Message, s.Notified, s.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save contact submission: %w", err)
	}
	return nil
}

// memoryRepo backs the service when no database is configured.
type memoryRepo struct {
	mu    sync.RWMutex
	items map[uuid.UUID]Submission
}

func NewMemoryRepository() Repository {
	return &memoryRepo{items: make(map[uuid.UUID]Submission)}
}

func (r *memoryRepo) Save(_ context.Context, s *Submission) error {
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[s.ID] = *s
	return nil
}
