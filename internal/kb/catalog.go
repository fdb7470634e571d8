package kb

import (
	"context"
	"sort"
	"strings"

	"github.com/ruby4mag/supportbot-go-backend/internal/models"
)

// Catalog is the read-mostly knowledge base the matching pipeline runs
// against. Implementations: Mongo (production) and Memory (tests, offline
// console).
type Catalog interface {
	// SearchByKeywords returns incidents whose keyword set intersects the
	// given keywords, ranked by distinct match count then frequency,
	// truncated to MaxSearchResults.
	SearchByKeywords(ctx context.Context, keywords []string) ([]models.DbIncident, error)
	GetIncident(ctx context.Context, incidentID string) (*models.DbIncident, error)
	IncrementFrequency(ctx context.Context, incidentID string) error
	LogQuery(ctx context.Context, entry models.QueryLog) error
	RecentQueries(ctx context.Context, limit int) ([]models.QueryLog, error)
	Stats(ctx context.Context) (*models.KbStats, error)
}

// MaxSearchResults caps keyword retrieval.
const MaxSearchResults = 10

// matchCount counts the distinct search keywords present in the incident's
// keyword set. Comparison is exact lowercase string equality, so multi-word
// keywords only match when queried verbatim.
func matchCount(incident models.DbIncident, keywords []string) int {
	present := make(map[string]bool, len(incident.Keywords))
	for _, k := range incident.Keywords {
		present[strings.ToLower(k)] = true
	}
	seen := make(map[string]bool, len(keywords))
	n := 0
	for _, k := range keywords {
		k = strings.ToLower(k)
		if seen[k] {
			continue
		}
		seen[k] = true
		if present[k] {
			n++
		}
	}
	return n
}

// rankByMatches orders candidates by (match count desc, frequency desc) and
// truncates to MaxSearchResults. Incidents with no matching keyword are
// dropped.
func rankByMatches(incidents []models.DbIncident, keywords []string) []models.DbIncident {
	type ranked struct {
		incident models.DbIncident
		matches  int
	}
	candidates := make([]ranked, 0, len(incidents))
	for _, inc := range incidents {
		if n := matchCount(inc, keywords); n > 0 {
			candidates = append(candidates, ranked{incident: inc, matches: n})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].matches != candidates[j].matches {
			return candidates[i].matches > candidates[j].matches
		}
		return candidates[i].incident.Frequency > candidates[j].incident.Frequency
	})
	if len(candidates) > MaxSearchResults {
		candidates = candidates[:MaxSearchResults]
	}
	out := make([]models.DbIncident, len(candidates))
	for i, c := range candidates {
		out[i] = c.incident
	}
	return out
}
