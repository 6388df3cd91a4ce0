package history

import "context"

// Repository is the append-only history log for a user.
type Repository interface {
	Append(ctx context.Context, record *ScanRecord) error
	// List returns the most recent records first, at most limit of them.
	List(ctx context.Context, userID string, limit int) ([]ScanRecord, error)
	// Clear removes every record for the user.
	Clear(ctx context.Context, userID string) error
}
