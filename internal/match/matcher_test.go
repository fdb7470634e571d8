package match

import (
	"context"
	"testing"

	"github.com/ruby4mag/supportbot-go-backend/internal/kb"
	"github.com/ruby4mag/supportbot-go-backend/internal/models"
	"github.com/ruby4mag/supportbot-go-backend/internal/nlp"
)

func newTestMatcher() (*Matcher, *kb.Memory) {
	catalog := kb.NewMemoryFromSeed()
	return NewMatcher(catalog, nlp.NewEngine()), catalog
}

func TestFindMatchesTomcatScenario(t *testing.T) {
	matcher, catalog := newTestMatcher()
	ctx := context.Background()

	results, analysis, err := matcher.FindMatches(ctx, "tomcat server not responding on port 8080")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) == 0 {
		t.Fatal("expected matches, got none")
	}

	best := results[0]
	if best.Incident.IncidentID != "SRV001" {
		t.Fatalf("top match = %s, want SRV001", best.Incident.IncidentID)
	}
	if best.ConfidenceLevel != models.ConfidenceVeryHigh && best.ConfidenceLevel != models.ConfidenceHigh {
		t.Errorf("confidence level = %s (score %v), want high or very_high",
			best.ConfidenceLevel, best.ConfidenceScore)
	}
	if analysis.PrimaryCategory != models.CategoryServer {
		t.Errorf("primary category = %s, want server", analysis.PrimaryCategory)
	}
	if !best.MatchQuality.CategoryAlignment {
		t.Error("expected category alignment for SRV001")
	}
	if best.MatchQuality.ExactMatches == 0 {
		t.Error("expected exact keyword matches for SRV001")
	}

	// Top-match side effects: frequency counter and query log.
	incident, err := catalog.GetIncident(ctx, "SRV001")
	if err != nil {
		t.Fatal(err)
	}
	if incident.Frequency != 2 {
		t.Errorf("SRV001 frequency = %d, want 2 after one match", incident.Frequency)
	}
	logs, err := catalog.RecentQueries(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(logs) != 1 {
		t.Fatalf("query logs = %d, want 1", len(logs))
	}
	if logs[0].MatchedIncidentID != "SRV001" {
		t.Errorf("logged incident = %s, want SRV001", logs[0].MatchedIncidentID)
	}
	if logs[0].ConfidenceScore != best.ConfidenceScore {
		t.Errorf("logged confidence = %v, want %v", logs[0].ConfidenceScore, best.ConfidenceScore)
	}
}

func TestFindMatchesNoKeyTermsHasNoSideEffects(t *testing.T) {
	matcher, catalog := newTestMatcher()
	ctx := context.Background()

	results, analysis, err := matcher.FindMatches(ctx, "xyzzy plugh quux")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 0 {
		t.Fatalf("expected no matches, got %d", len(results))
	}
	if analysis.PrimaryCategory != models.CategoryUnknown {
		t.Errorf("primary category = %s, want unknown", analysis.PrimaryCategory)
	}

	logs, err := catalog.RecentQueries(ctx, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(logs) != 0 {
		t.Errorf("expected no query logs, got %d", len(logs))
	}
	stats, err := catalog.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if stats.QueriesLogged != 0 {
		t.Errorf("queries logged = %d, want 0", stats.QueriesLogged)
	}
}

func TestFindMatchesOrderingAndBounds(t *testing.T) {
	matcher, _ := newTestMatcher()
	ctx := context.Background()

	results, _, err := matcher.FindMatches(ctx, "database connection timeout and slow query performance")
	if err != nil {
		t.Fatal(err)
	}
	if len(results) == 0 {
		t.Fatal("expected matches")
	}
	if len(results) > kb.MaxSearchResults {
		t.Errorf("got %d results, max is %d", len(results), kb.MaxSearchResults)
	}

	for i, r := range results {
		if r.ConfidenceScore < 0 || r.ConfidenceScore > 1 {
			t.Errorf("result %d confidence %v out of [0,1]", i, r.ConfidenceScore)
		}
		if r.SimilarityScore < 0 || r.SimilarityScore > 1 {
			t.Errorf("result %d similarity %v out of [0,1]", i, r.SimilarityScore)
		}
		if i > 0 && r.ConfidenceScore > results[i-1].ConfidenceScore {
			t.Errorf("results not sorted: result %d (%v) > result %d (%v)",
				i, r.ConfidenceScore, i-1, results[i-1].ConfidenceScore)
		}
		if got := ConfidenceLevel(r.ConfidenceScore); got != r.ConfidenceLevel {
			t.Errorf("result %d level %s inconsistent with score %v (want %s)",
				i, r.ConfidenceLevel, r.ConfidenceScore, got)
		}
	}
}

func TestConfidenceLevel(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{1.0, models.ConfidenceVeryHigh},
		{0.90, models.ConfidenceVeryHigh},
		{0.89, models.ConfidenceHigh},
		{0.75, models.ConfidenceHigh},
		{0.74, models.ConfidenceMedium},
		{0.60, models.ConfidenceMedium},
		{0.59, models.ConfidenceLow},
		{0.40, models.ConfidenceLow},
		{0.39, models.ConfidenceVeryLow},
		{0.20, models.ConfidenceVeryLow},
		{0.19, models.ConfidenceNoMatch},
		{0, models.ConfidenceNoMatch},
	}
	for _, tc := range tests {
		if got := ConfidenceLevel(tc.score); got != tc.want {
			t.Errorf("ConfidenceLevel(%v) = %s, want %s", tc.score, got, tc.want)
		}
	}
}
