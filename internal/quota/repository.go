package quota

import "context"

// Repository persists per-user usage state. Load returns (nil, nil) when no
// state exists yet; the tracker initializes lazily.
type Repository interface {
	Load(ctx context.Context, userID string) (*UsageState, error)
	Save(ctx context.Context, state *UsageState) error
}
