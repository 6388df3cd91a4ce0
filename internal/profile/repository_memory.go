package profile

import (
	"context"
	"sync"
)

type InMemoryRepository struct {
	mu       sync.Mutex
	profiles map[string]UserProfile
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{profiles: make(map[string]UserProfile)}
}

// Seed installs a profile, used by tests and by guest-free wiring.
func (r *InMemoryRepository) Seed(p UserProfile) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.UserID] = p
}

func (r *InMemoryRepository) Get(_ context.Context, userID string) (*UserProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[userID]
	if !ok {
		return nil, ErrNotFound
	}
	copied := p
	if copied.Allergies == nil {
		copied.Allergies = []string{}
	}
	return &copied, nil
}

func (r *InMemoryRepository) Apply(_ context.Context, userID string, update Update) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.profiles[userID]
	if !ok {
		return ErrNotFound
	}
	if update.Name != nil {
		p.Name = *update.Name
	}
	if update.Age != nil {
		p.Age = *update.Age
	}
	if update.Gender != nil {
		p.Gender = *update.Gender
	}
	if update.Allergies != nil {
		p.Allergies = append([]string{}, (*update.Allergies)...)
	}
	r.profiles[userID] = p
	return nil
}
