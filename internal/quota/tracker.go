package quota

import (
	"context"
	"fmt"
	"time"
)

// Tracker enforces the daily per-action limits. The read-check-increment
// sequence is not atomic across sessions: two tabs racing can under- or
// over-count, which the client-trust model accepts.
type Tracker struct {
	repo Repository
	now  func() time.Time
}

func NewTracker(repo Repository) *Tracker {
	return &Tracker{repo: repo, now: time.Now}
}

// CheckAndIncrement applies day rollover, evaluates the plan limit for the
// action and, when allowed, increments the matching counter and persists.
// On denial the stored state is left untouched.
func (t *Tracker) CheckAndIncrement(ctx context.Context, userID string, action Action) (Decision, error) {
	today := t.now().Format(DateLayout)

	state, err := t.repo.Load(ctx, userID)
	if err != nil {
		return Decision{}, fmt.Errorf("load usage state: %w", err)
	}
	if state == nil {
		state = &UsageState{
			UserID:       userID,
			Plan:         PlanFree,
			LastScanDate: today,
		}
	}

	// Rollover happens before any limit check.
	if state.LastScanDate != today {
		state.ScansToday = 0
		state.AnalysisToday = 0
		state.LastScanDate = today
	}

	if state.Plan != PlanPremium {
		switch action {
		case ActionScan:
			if state.ScansToday >= FreeScanLimit {
				return Decision{Reason: fmt.Sprintf("daily scan limit reached (%d/day on the free plan)", FreeScanLimit)}, nil
			}
		case ActionAnalysis:
			if state.AnalysisToday >= FreeAnalysisLimit {
				return Decision{Reason: fmt.Sprintf("daily analysis limit reached (%d/day on the free plan)", FreeAnalysisLimit)}, nil
			}
		default:
			return Decision{}, fmt.Errorf("unknown action %q", action)
		}
	}

	switch action {
	case ActionScan:
		state.ScansToday++
	case ActionAnalysis:
		state.AnalysisToday++
	default:
		return Decision{}, fmt.Errorf("unknown action %q", action)
	}

	if err := t.repo.Save(ctx, state); err != nil {
		return Decision{}, fmt.Errorf("save usage state: %w", err)
	}

	return Decision{Allowed: true}, nil
}
