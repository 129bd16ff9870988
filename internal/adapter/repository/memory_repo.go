package repository

import (
	"context"
	"sync"

	"resume-builder/internal/domain"
)

// MemoryRepo keeps resumes in process memory with the same one-per-user
// upsert semantics as ResumesRepo. Used for local development and tests.
type MemoryRepo struct {
	mu     sync.Mutex
	byUser map[string]domain.Resume
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byUser: map[string]domain.Resume{}}
}

func (r *MemoryRepo) FindByUser(_ context.Context, userID string) (*domain.Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, ok := r.byUser[userID]
	if !ok {
		return nil, nil
	}
	return clone(res), nil
}

func (r *MemoryRepo) Upsert(_ context.Context, res *domain.Resume) (*domain.Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *clone(*res)
	if existing, ok := r.byUser[res.UserID]; ok {
		stored.ID = existing.ID
		stored.CreatedAt = existing.CreatedAt
	}
	r.byUser[res.UserID] = stored
	return clone(stored), nil
}

// Count reports how many resumes are stored. It is a hook for tests and
// diagnostics; the service only goes through FindByUser and Upsert.
func (r *MemoryRepo) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.byUser)
}

func clone(res domain.Resume) *domain.Resume {
	res.Content = res.Content.Clone()
	return &res
}
