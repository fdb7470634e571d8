package automation

import (
	"testing"
	"time"

	"github.com/ruby4mag/supportbot-go-backend/internal/models"
)

func TestLedgerByIncidentWindow(t *testing.T) {
	ledger := NewLedger()
	base := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)

	ledger.Append(models.ExecutionRecord{IncidentID: "A", Timestamp: base})
	ledger.Append(models.ExecutionRecord{IncidentID: "A", Timestamp: base.Add(30 * time.Minute)})
	ledger.Append(models.ExecutionRecord{IncidentID: "B", Timestamp: base.Add(45 * time.Minute)})

	if got := len(ledger.ByIncident("A", time.Time{})); got != 2 {
		t.Errorf("full history for A = %d, want 2", got)
	}
	if got := len(ledger.ByIncident("A", base.Add(15*time.Minute))); got != 1 {
		t.Errorf("windowed history for A = %d, want 1", got)
	}
	if got := ledger.CountSince("A", base.Add(15*time.Minute)); got != 1 {
		t.Errorf("CountSince = %d, want 1", got)
	}
	if got := ledger.CountSince("B", base); got != 1 {
		t.Errorf("CountSince B = %d, want 1", got)
	}
}

func TestLedgerAllReturnsSnapshot(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(models.ExecutionRecord{IncidentID: "A", Status: models.ExecutionSuccess})

	snapshot := ledger.All()
	snapshot[0].IncidentID = "MUTATED"

	if ledger.All()[0].IncidentID != "A" {
		t.Error("mutating the snapshot changed the ledger")
	}
}

func TestLedgerStats(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(models.ExecutionRecord{IncidentID: "A", Status: models.ExecutionSuccess})
	ledger.Append(models.ExecutionRecord{IncidentID: "B", Status: models.ExecutionSuccess})

	stats := ledger.Stats(30)
	if stats.TotalExecutions != 2 || stats.Successful != 2 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.TimeSavedMinutes != 60 {
		t.Errorf("time saved = %d, want 60", stats.TimeSavedMinutes)
	}
}
