package profile

import (
	"context"
	"errors"
	"strings"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Get(ctx context.Context, userID string) (*UserProfile, error) {
	return s.repo.Get(ctx, userID)
}

// Update applies a partial edit with merge semantics. Provided fields are
// validated; absent fields are not touched.
func (s *Service) Update(ctx context.Context, userID string, update Update) error {
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return errors.New("name cannot be empty")
	}
	if update.Age != nil && *update.Age <= 0 {
		return errors.New("age must be positive")
	}
	if update.Allergies != nil {
		cleaned := cleanList(*update.Allergies)
		update.Allergies = &cleaned
	}
	return s.repo.Apply(ctx, userID, update)
}

// ReplaceAllergies swaps the whole allergy list. There is no incremental
// add/remove; the client always submits the full list.
func (s *Service) ReplaceAllergies(ctx context.Context, userID string, allergies []string) error {
	cleaned := cleanList(allergies)
	return s.repo.Apply(ctx, userID, Update{Allergies: &cleaned})
}

func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, a := range in {
		if trimmed := strings.TrimSpace(a); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
