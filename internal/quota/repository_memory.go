package quota

import (
	"context"
	"sync"
)

type InMemoryRepository struct {
	mu     sync.Mutex
	states map[string]UsageState
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{states: make(map[string]UsageState)}
}

func (r *InMemoryRepository) Load(_ context.Context, userID string) (*UsageState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	state, ok := r.states[userID]
	if !ok {
		return nil, nil
	}
	copied := state
	return &copied, nil
}

func (r *InMemoryRepository) Save(_ context.Context, state *UsageState) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states[state.UserID] = *state
	return nil
}

// Seed installs an existing state, used by tests.
func (r *InMemoryRepository) Seed(state UsageState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states[state.UserID] = state
}
