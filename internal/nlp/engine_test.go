package nlp

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ruby4mag/supportbot-go-backend/internal/models"
)

func TestPreprocessTokenizesAndDropsStopwords(t *testing.T) {
	e := NewEngine()

	analysis := e.Preprocess("The Tomcat server is not responding on port 8080")

	want := []string{"tomcat", "server", "responding", "port", "8080"}
	if diff := cmp.Diff(want, analysis.Tokens); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
	if analysis.Original != "The Tomcat server is not responding on port 8080" {
		t.Errorf("original query not preserved: %q", analysis.Original)
	}
}

func TestPreprocessExtractsPatterns(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name  string
		query string
		want  map[string][]string
	}{
		{
			name:  "port and service",
			query: "tomcat not responding on port 8080",
			want: map[string][]string{
				"port":    {"8080"},
				"service": {"tomcat"},
			},
		},
		{
			name:  "percentage and path",
			query: "disk usage at 95% on /var/log",
			want: map[string][]string{
				"percentage": {"95"},
				"path":       {"/var/log"},
			},
		},
		{
			name:  "memory size and duration",
			query: "heap grew 2 gb in 30 minutes",
			want: map[string][]string{
				"memory_size":   {"2gb"},
				"time_duration": {"30minutes"},
			},
		},
		{
			name:  "version",
			query: "regression after upgrading to v2.4.1",
			want: map[string][]string{
				"version": {"v2.4.1"},
			},
		},
		{
			// The version pattern also fires on the first three octets;
			// a substring may land under several pattern names.
			name:  "ip address",
			query: "host 10.0.0.12 unreachable",
			want: map[string][]string{
				"ip_address": {"10.0.0.12"},
				"version":    {"10.0.0"},
			},
		},
		{
			// A bare three-digit number reads as an error code even
			// mid-sentence; extraction is intentionally permissive.
			name:  "error code from page count",
			query: "page 500 of the report",
			want: map[string][]string{
				"error_code": {"500"},
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			analysis := e.Preprocess(tc.query)
			if diff := cmp.Diff(tc.want, analysis.Patterns); diff != "" {
				t.Errorf("patterns mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestPreprocessClassifiesCategory(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		query string
		want  string
	}{
		{"tomcat server not responding on port 8080", models.CategoryServer},
		{"mysql database connection timeout", models.CategoryDatabase},
		{"cpu usage high and memory leak", models.CategoryPerformance},
		{"disk space full cleanup needed", models.CategoryStorage},
		{"ssl certificate expired on firewall", models.CategoryNetwork},
		{"brute force attack detected", models.CategorySecurity},
		{"hello there general kenobi", models.CategoryUnknown},
	}

	for _, tc := range tests {
		analysis := e.Preprocess(tc.query)
		if analysis.PrimaryCategory != tc.want {
			t.Errorf("Preprocess(%q).PrimaryCategory = %q, want %q (scores %v)",
				tc.query, analysis.PrimaryCategory, tc.want, analysis.CategoryScores)
		}
	}
}

func TestPreprocessTieBreaksLexically(t *testing.T) {
	e := NewEngine()

	// "latency" is in both network and performance; "bandwidth" too. Both
	// categories score 2, and network sorts before performance.
	analysis := e.Preprocess("latency bandwidth")

	if analysis.CategoryScores[models.CategoryNetwork] != analysis.CategoryScores[models.CategoryPerformance] {
		t.Fatalf("expected a tie, scores: %v", analysis.CategoryScores)
	}
	if analysis.PrimaryCategory != models.CategoryNetwork {
		t.Errorf("PrimaryCategory = %q, want %q on tie", analysis.PrimaryCategory, models.CategoryNetwork)
	}
}

func TestKeyTerms(t *testing.T) {
	e := NewEngine()

	got := e.KeyTerms([]string{"tomcat", "zebra", "server", "port", "8080", "tomcat"})
	want := []string{"tomcat", "server", "port", "tomcat"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("key terms mismatch (-want +got):\n%s", diff)
	}

	if terms := e.KeyTerms([]string{"xyzzy", "plugh"}); len(terms) != 0 {
		t.Errorf("expected no key terms for nonsense tokens, got %v", terms)
	}
}

func TestSimilarity(t *testing.T) {
	e := NewEngine()

	tests := []struct {
		name     string
		tokens   []string
		keywords []string
		want     float64
	}{
		{
			name:     "empty tokens",
			tokens:   nil,
			keywords: []string{"tomcat"},
			want:     0,
		},
		{
			name:     "empty keywords",
			tokens:   []string{"tomcat"},
			keywords: nil,
			want:     0,
		},
		{
			name:     "no overlap",
			tokens:   []string{"zebra"},
			keywords: []string{"tomcat"},
			want:     0,
		},
		{
			// identical sets: jaccard 1.0, capped after the boost
			name:     "identical capped at one",
			tokens:   []string{"tomcat", "server"},
			keywords: []string{"tomcat", "server"},
			want:     1.0,
		},
		{
			// intersection 1, union 3, one exact match: 1/3 + 0.1
			name:     "partial overlap",
			tokens:   []string{"tomcat", "down"},
			keywords: []string{"tomcat", "server"},
			want:     1.0/3.0 + 0.1,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := e.Similarity(tc.tokens, tc.keywords)
			if diff := cmp.Diff(tc.want, got, cmpopts()); diff != "" {
				t.Errorf("Similarity(%v, %v) mismatch (-want +got):\n%s", tc.tokens, tc.keywords, diff)
			}
			if got < 0 || got > 1 {
				t.Errorf("similarity %v out of range [0,1]", got)
			}
		})
	}
}

func cmpopts() cmp.Option {
	return cmp.Comparer(func(a, b float64) bool {
		d := a - b
		if d < 0 {
			d = -d
		}
		return d < 1e-9
	})
}
