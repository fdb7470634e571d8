package automation

import (
	"sync"
	"time"

	"github.com/ruby4mag/supportbot-go-backend/internal/models"
)

// Ledger is the process-lifetime, append-only record of simulated
// executions. Records are never mutated after append. Access is serialized
// because the HTTP surface serves concurrent requests.
type Ledger struct {
	mu      sync.Mutex
	records []models.ExecutionRecord
}

func NewLedger() *Ledger {
	return &Ledger{}
}

func (l *Ledger) Append(record models.ExecutionRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.records = append(l.records, record)
}

// All returns a snapshot of every record, oldest first.
func (l *Ledger) All() []models.ExecutionRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.ExecutionRecord, len(l.records))
	copy(out, l.records)
	return out
}

// ByIncident returns records for one incident, optionally restricted to
// those at or after cutoff. A zero cutoff returns the full history.
func (l *Ledger) ByIncident(incidentID string, cutoff time.Time) []models.ExecutionRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []models.ExecutionRecord
	for _, r := range l.records {
		if r.IncidentID != incidentID {
			continue
		}
		if !cutoff.IsZero() && r.Timestamp.Before(cutoff) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// CountSince counts executions for the incident at or after cutoff. The
// rate limiter filters the trailing window with this.
func (l *Ledger) CountSince(incidentID string, cutoff time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, r := range l.records {
		if r.IncidentID == incidentID && !r.Timestamp.Before(cutoff) {
			n++
		}
	}
	return n
}

// LedgerStats summarizes the ledger for the dashboard.
type LedgerStats struct {
	TotalExecutions  int `json:"total_executions"`
	Successful       int `json:"successful"`
	TimeSavedMinutes int `json:"time_saved_minutes"`
}

func (l *Ledger) Stats(timeSavedPerRun int) LedgerStats {
	l.mu.Lock()
	defer l.mu.Unlock()
	stats := LedgerStats{TotalExecutions: len(l.records)}
	for _, r := range l.records {
		if r.Status == models.ExecutionSuccess {
			stats.Successful++
			stats.TimeSavedMinutes += timeSavedPerRun
		}
	}
	return stats
}
