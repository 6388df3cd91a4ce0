package history

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryRepository backs tests and the unauthenticated fallback, where scan
// results live only for the lifetime of the process. Guest storage is capped
// the same way the history view is.
type InMemoryRepository struct {
	mu      sync.Mutex
	records map[string][]ScanRecord
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{records: make(map[string][]ScanRecord)}
}

func (r *InMemoryRepository) Append(_ context.Context, record *ScanRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	// Newest first, capped.
	list := append([]ScanRecord{*record}, r.records[record.UserID]...)
	if len(list) > DefaultListLimit {
		list = list[:DefaultListLimit]
	}
	r.records[record.UserID] = list
	return nil
}

func (r *InMemoryRepository) List(_ context.Context, userID string, limit int) ([]ScanRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}
	list := r.records[userID]
	if len(list) > limit {
		list = list[:limit]
	}
	out := make([]ScanRecord, len(list))
	copy(out, list)
	return out, nil
}

func (r *InMemoryRepository) Clear(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, userID)
	return nil
}
