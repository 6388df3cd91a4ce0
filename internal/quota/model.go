package quota

// Action is one of the two independently metered user actions.
type Action string

const (
	ActionScan     Action = "scan"
	ActionAnalysis Action = "ai-analysis"
)

const (
	PlanFree    = "free"
	PlanPremium = "premium"

	FreeScanLimit     = 8
	FreeAnalysisLimit = 5
)

// DateLayout is the calendar-date form stored in LastScanDate.
const DateLayout = "2006-01-02"

// UsageState is the per-user daily-limit record. Counters reset whenever the
// current calendar date differs from LastScanDate.
type UsageState struct {
	UserID        string
	Plan          string
	ScansToday    int
	AnalysisToday int
	LastScanDate  string
}

// Decision is the outcome of a quota check. A denial is informational, not an
// error: the caller surfaces Reason and skips the gated action.
type Decision struct {
	Allowed bool
	Reason  string
}
