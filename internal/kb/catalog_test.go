package kb

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ruby4mag/supportbot-go-backend/internal/models"
)

func rankingFixture() []models.DbIncident {
	return []models.DbIncident{
		{IncidentID: "A", Keywords: []string{"tomcat", "server"}, Frequency: 1},
		{IncidentID: "B", Keywords: []string{"tomcat", "server", "port"}, Frequency: 1},
		{IncidentID: "C", Keywords: []string{"tomcat"}, Frequency: 9},
		{IncidentID: "D", Keywords: []string{"mysql"}, Frequency: 50},
	}
}

func ids(incidents []models.DbIncident) []string {
	out := make([]string, len(incidents))
	for i, inc := range incidents {
		out[i] = inc.IncidentID
	}
	return out
}

func TestSearchByKeywordsRanking(t *testing.T) {
	m := NewMemory(rankingFixture())

	got, err := m.SearchByKeywords(context.Background(), []string{"tomcat", "server", "port"})
	if err != nil {
		t.Fatal(err)
	}

	// B matches 3 keywords, A matches 2, C matches 1. D matches none and is
	// dropped regardless of its frequency.
	want := []string{"B", "A", "C"}
	if diff := cmp.Diff(want, ids(got)); diff != "" {
		t.Errorf("ranking mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchByKeywordsFrequencyTieBreak(t *testing.T) {
	m := NewMemory([]models.DbIncident{
		{IncidentID: "COLD", Keywords: []string{"tomcat"}, Frequency: 1},
		{IncidentID: "HOT", Keywords: []string{"tomcat"}, Frequency: 40},
	})

	got, err := m.SearchByKeywords(context.Background(), []string{"tomcat"})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"HOT", "COLD"}, ids(got)); diff != "" {
		t.Errorf("tie-break mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchByKeywordsExactEquality(t *testing.T) {
	m := NewMemory([]models.DbIncident{
		{IncidentID: "X", Keywords: []string{"port 8080", "not responding"}, Frequency: 1},
	})

	// Multi-word keywords only match when queried verbatim; single tokens
	// from them do not count.
	got, err := m.SearchByKeywords(context.Background(), []string{"port", "responding"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("expected no matches for partial keyword tokens, got %v", ids(got))
	}

	got, err = m.SearchByKeywords(context.Background(), []string{"port 8080"})
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"X"}, ids(got)); diff != "" {
		t.Errorf("verbatim keyword mismatch (-want +got):\n%s", diff)
	}
}

func TestSearchByKeywordsTruncates(t *testing.T) {
	var incidents []models.DbIncident
	for i := 0; i < MaxSearchResults+5; i++ {
		incidents = append(incidents, models.DbIncident{
			IncidentID: string(rune('A' + i)),
			Keywords:   []string{"tomcat"},
			Frequency:  1,
		})
	}
	m := NewMemory(incidents)

	got, err := m.SearchByKeywords(context.Background(), []string{"tomcat"})
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != MaxSearchResults {
		t.Errorf("got %d results, want %d", len(got), MaxSearchResults)
	}
}

func TestGetIncidentMissingReturnsNil(t *testing.T) {
	m := NewMemoryFromSeed()

	incident, err := m.GetIncident(context.Background(), "NOPE999")
	if err != nil {
		t.Fatal(err)
	}
	if incident != nil {
		t.Errorf("expected nil for unknown id, got %+v", incident)
	}
}

func TestIncrementFrequency(t *testing.T) {
	m := NewMemoryFromSeed()
	ctx := context.Background()

	if err := m.IncrementFrequency(ctx, "SRV001"); err != nil {
		t.Fatal(err)
	}
	incident, err := m.GetIncident(ctx, "SRV001")
	if err != nil {
		t.Fatal(err)
	}
	if incident.Frequency != 2 {
		t.Errorf("frequency = %d, want 2", incident.Frequency)
	}

	if err := m.IncrementFrequency(ctx, "NOPE999"); err == nil {
		t.Error("expected error for unknown incident")
	}
}

func TestRecentQueriesNewestFirst(t *testing.T) {
	m := NewMemoryFromSeed()
	ctx := context.Background()

	for _, q := range []string{"first", "second", "third"} {
		if err := m.LogQuery(ctx, models.QueryLog{UserQuery: q, MatchedIncidentID: "SRV001"}); err != nil {
			t.Fatal(err)
		}
	}

	logs, err := m.RecentQueries(ctx, 2)
	if err != nil {
		t.Fatal(err)
	}
	queries := make([]string, len(logs))
	for i, entry := range logs {
		queries[i] = entry.UserQuery
	}
	if diff := cmp.Diff([]string{"third", "second"}, queries); diff != "" {
		t.Errorf("recent queries mismatch (-want +got):\n%s", diff)
	}
}

func TestStats(t *testing.T) {
	m := NewMemoryFromSeed()
	ctx := context.Background()

	seed := SeedIncidents()
	stats, err := m.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalIncidents != len(seed) {
		t.Errorf("total incidents = %d, want %d", stats.TotalIncidents, len(seed))
	}

	byCategory := 0
	for _, n := range stats.ByCategory {
		byCategory += n
	}
	if byCategory != len(seed) {
		t.Errorf("category counts sum to %d, want %d", byCategory, len(seed))
	}

	automation := 0
	for _, inc := range seed {
		if inc.HasAutomation() {
			automation++
		}
	}
	if stats.AutomationAvailable != automation {
		t.Errorf("automation available = %d, want %d", stats.AutomationAvailable, automation)
	}
	if stats.AvgResolutionTime <= 0 {
		t.Errorf("avg resolution time = %v, want > 0", stats.AvgResolutionTime)
	}

	if err := m.LogQuery(ctx, models.QueryLog{UserQuery: "q"}); err != nil {
		t.Fatal(err)
	}
	stats, err = m.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.QueriesLogged != 1 {
		t.Errorf("queries logged = %d, want 1", stats.QueriesLogged)
	}
}
