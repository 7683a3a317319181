package consultations

import (
	"context"
	"sync"
	"time"
)

type Repository interface {
	Append(ctx context.Context, sub Submission) (Request, error)
	List(ctx context.Context) ([]Request, error)
	GetByID(ctx context.Context, id int) (Request, error)
}

// MemoryRepository is the append-only ledger. Ids are the 1-based insertion
// position; the length read, id assignment and append happen under one lock.
type MemoryRepository struct {
	mu       sync.RWMutex
	requests []Request
	now      func() time.Time
}

func NewMemoryRepository(now func() time.Time) *MemoryRepository {
	if now == nil {
		now = time.Now
	}
	return &MemoryRepository{
		requests: make([]Request, 0),
		now:      now,
	}
}

func (r *MemoryRepository) Append(_ context.Context, sub Submission) (Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	req := Request{
		ID:              len(r.requests) + 1,
		Name:            sub.Name,
		Email:           sub.Email,
		Company:         sub.Company,
		Message:         sub.Message,
		ServiceInterest: sub.ServiceInterest,
		Timestamp:       r.now().UTC().Format(TimestampLayout),
		Status:          StatusPending,
	}
	r.requests = append(r.requests, req)
	return req, nil
}

func (r *MemoryRepository) List(_ context.Context) ([]Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Request, len(r.requests))
	copy(out, r.requests)
	return out, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id int) (Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// ids equal positions, so the lookup is an index.
	if id < 1 || id > len(r.requests) {
		return Request{}, ErrNotFound
	}
	return r.requests[id-1], nil
}
