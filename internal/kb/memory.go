package kb

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ruby4mag/supportbot-go-backend/internal/models"
)

// Memory is an in-process catalog used by tests and the offline console.
type Memory struct {
	mu        sync.Mutex
	incidents []models.DbIncident
	queryLogs []models.QueryLog
}

// NewMemory builds a catalog over copies of the given incidents.
func NewMemory(incidents []models.DbIncident) *Memory {
	m := &Memory{incidents: make([]models.DbIncident, len(incidents))}
	copy(m.incidents, incidents)
	for i := range m.incidents {
		if m.incidents[i].Frequency == 0 {
			m.incidents[i].Frequency = 1
		}
	}
	return m
}

// NewMemoryFromSeed builds an in-memory catalog over the bundled dataset.
func NewMemoryFromSeed() *Memory {
	return NewMemory(SeedIncidents())
}

func (m *Memory) SearchByKeywords(_ context.Context, keywords []string) ([]models.DbIncident, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	snapshot := make([]models.DbIncident, len(m.incidents))
	copy(snapshot, m.incidents)
	return rankByMatches(snapshot, keywords), nil
}

func (m *Memory) GetIncident(_ context.Context, incidentID string) (*models.DbIncident, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, inc := range m.incidents {
		if inc.IncidentID == incidentID {
			found := inc
			return &found, nil
		}
	}
	return nil, nil
}

func (m *Memory) IncrementFrequency(_ context.Context, incidentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.incidents {
		if m.incidents[i].IncidentID == incidentID {
			m.incidents[i].Frequency++
			return nil
		}
	}
	return fmt.Errorf("incident %s not found", incidentID)
}

func (m *Memory) LogQuery(_ context.Context, entry models.QueryLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	m.queryLogs = append(m.queryLogs, entry)
	return nil
}

func (m *Memory) RecentQueries(_ context.Context, limit int) ([]models.QueryLog, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	start := len(m.queryLogs) - limit
	if start < 0 {
		start = 0
	}
	out := make([]models.QueryLog, 0, limit)
	for i := len(m.queryLogs) - 1; i >= start; i-- {
		out = append(out, m.queryLogs[i])
	}
	return out, nil
}

func (m *Memory) Stats(_ context.Context) (*models.KbStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stats := summarize(m.incidents)
	stats.QueriesLogged = len(m.queryLogs)
	return stats, nil
}
