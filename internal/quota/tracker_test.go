package quota

import (
	"context"
	"testing"
	"time"
)

func trackerAt(repo Repository, date string) *Tracker {
	t := NewTracker(repo)
	fixed, _ := time.Parse(DateLayout, date)
	t.now = func() time.Time { return fixed }
	return t
}

func TestCheckAndIncrement_LazyInit(t *testing.T) {
	repo := NewInMemoryRepository()
	tr := trackerAt(repo, "2024-01-01")

	dec, err := tr.CheckAndIncrement(context.Background(), "u1", ActionScan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dec.Allowed {
		t.Fatalf("expected allowed, got denial: %s", dec.Reason)
	}

	state, _ := repo.Load(context.Background(), "u1")
	if state == nil || state.Plan != PlanFree || state.ScansToday != 1 || state.AnalysisToday != 0 {
		t.Fatalf("unexpected state after init: %+v", state)
	}
	if state.LastScanDate != "2024-01-01" {
		t.Fatalf("expected lastScanDate 2024-01-01, got %s", state.LastScanDate)
	}
}

func TestCheckAndIncrement_DayRollover(t *testing.T) {
	repo := NewInMemoryRepository()
	repo.Seed(UsageState{UserID: "u1", Plan: PlanFree, ScansToday: 8, LastScanDate: "2024-01-01"})
	tr := trackerAt(repo, "2024-01-02")

	dec, err := tr.CheckAndIncrement(context.Background(), "u1", ActionScan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dec.Allowed {
		t.Fatalf("expected allowed after rollover, got denial: %s", dec.Reason)
	}

	state, _ := repo.Load(context.Background(), "u1")
	if state.ScansToday != 1 || state.LastScanDate != "2024-01-02" {
		t.Fatalf("rollover not applied: %+v", state)
	}
}

func TestCheckAndIncrement_ScanExhaustionLeavesStateUntouched(t *testing.T) {
	repo := NewInMemoryRepository()
	seed := UsageState{UserID: "u1", Plan: PlanFree, ScansToday: 8, AnalysisToday: 2, LastScanDate: "2024-01-01"}
	repo.Seed(seed)
	tr := trackerAt(repo, "2024-01-01")

	dec, err := tr.CheckAndIncrement(context.Background(), "u1", ActionScan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dec.Allowed {
		t.Fatal("expected denial at the scan limit")
	}
	if dec.Reason == "" {
		t.Fatal("denial must carry a reason")
	}

	state, _ := repo.Load(context.Background(), "u1")
	if *state != seed {
		t.Fatalf("state mutated on denial: %+v", state)
	}
}

func TestCheckAndIncrement_AnalysisLimit(t *testing.T) {
	repo := NewInMemoryRepository()
	repo.Seed(UsageState{UserID: "u1", Plan: PlanFree, AnalysisToday: 5, LastScanDate: "2024-01-01"})
	tr := trackerAt(repo, "2024-01-01")

	dec, _ := tr.CheckAndIncrement(context.Background(), "u1", ActionAnalysis)
	if dec.Allowed {
		t.Fatal("expected denial at the analysis limit")
	}

	// Scans are metered independently.
	dec, _ = tr.CheckAndIncrement(context.Background(), "u1", ActionScan)
	if !dec.Allowed {
		t.Fatalf("scan should still be allowed: %s", dec.Reason)
	}
}

func TestCheckAndIncrement_PremiumBypass(t *testing.T) {
	repo := NewInMemoryRepository()
	repo.Seed(UsageState{UserID: "u1", Plan: PlanPremium, ScansToday: 1000, LastScanDate: "2024-01-01"})
	tr := trackerAt(repo, "2024-01-01")

	dec, err := tr.CheckAndIncrement(context.Background(), "u1", ActionScan)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !dec.Allowed {
		t.Fatalf("premium must never be denied: %s", dec.Reason)
	}

	state, _ := repo.Load(context.Background(), "u1")
	if state.ScansToday != 1001 {
		t.Fatalf("premium usage still counted, expected 1001 got %d", state.ScansToday)
	}
}

func TestCheckAndIncrement_UnknownAction(t *testing.T) {
	tr := trackerAt(NewInMemoryRepository(), "2024-01-01")
	if _, err := tr.CheckAndIncrement(context.Background(), "u1", Action("export")); err == nil {
		t.Fatal("expected error for unknown action")
	}
}
