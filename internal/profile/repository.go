package profile

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("profile not found")

type Repository interface {
	Get(ctx context.Context, userID string) (*UserProfile, error)
	// Apply writes only the fields set in the update.
	Apply(ctx context.Context, userID string, update Update) error
}
