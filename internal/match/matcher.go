package match

import (
	"context"
	"log"
	"math"
	"sort"
	"time"

	"github.com/ruby4mag/supportbot-go-backend/internal/kb"
	"github.com/ruby4mag/supportbot-go-backend/internal/models"
	"github.com/ruby4mag/supportbot-go-backend/internal/nlp"
)

// Matcher runs the full pipeline for one query: normalize, classify,
// retrieve candidates from the catalog, score confidence and record the top
// match. Construct one per catalog; it holds no per-query state.
type Matcher struct {
	catalog kb.Catalog
	engine  *nlp.Engine
}

func NewMatcher(catalog kb.Catalog, engine *nlp.Engine) *Matcher {
	return &Matcher{catalog: catalog, engine: engine}
}

// Engine exposes the NLP engine for callers that present analysis details.
func (m *Matcher) Engine() *nlp.Engine {
	return m.engine
}

var severityWeights = map[string]float64{
	models.SeverityCritical: 0.30,
	models.SeverityHigh:     0.20,
	models.SeverityMedium:   0.10,
	models.SeverityLow:      0.05,
}

// Ordered high to low; the first threshold the score meets wins.
var confidenceThresholds = []struct {
	level string
	min   float64
}{
	{models.ConfidenceVeryHigh, 0.90},
	{models.ConfidenceHigh, 0.75},
	{models.ConfidenceMedium, 0.60},
	{models.ConfidenceLow, 0.40},
	{models.ConfidenceVeryLow, 0.20},
}

// ConfidenceLevel buckets a confidence score. Monotonic in the score.
func ConfidenceLevel(score float64) string {
	for _, t := range confidenceThresholds {
		if score >= t.min {
			return t.level
		}
	}
	return models.ConfidenceNoMatch
}

// FindMatches analyzes the query and returns scored candidates, best first.
// A query with no recognized technical vocabulary returns an empty slice and
// fires no side effects. When candidates exist, the top match's frequency
// counter is incremented and the query is logged.
func (m *Matcher) FindMatches(ctx context.Context, query string) ([]models.MatchResult, *models.QueryAnalysis, error) {
	start := time.Now()

	analysis := m.engine.Preprocess(query)
	keyTerms := m.engine.KeyTerms(analysis.Tokens)
	if len(keyTerms) == 0 {
		return nil, analysis, nil
	}

	candidates, err := m.catalog.SearchByKeywords(ctx, keyTerms)
	if err != nil {
		return nil, analysis, err
	}
	if len(candidates) == 0 {
		return nil, analysis, nil
	}

	results := make([]models.MatchResult, 0, len(candidates))
	for _, incident := range candidates {
		results = append(results, m.score(analysis, keyTerms, incident))
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].ConfidenceScore > results[j].ConfidenceScore
	})

	best := results[0]
	if err := m.catalog.IncrementFrequency(ctx, best.Incident.IncidentID); err != nil {
		log.Printf("Failed to increment frequency for %s: %v", best.Incident.IncidentID, err)
	}
	entry := models.QueryLog{
		UserQuery:         query,
		MatchedIncidentID: best.Incident.IncidentID,
		ConfidenceScore:   best.ConfidenceScore,
		ResponseTimeMs:    float64(time.Since(start)) / float64(time.Millisecond),
	}
	if err := m.catalog.LogQuery(ctx, entry); err != nil {
		log.Printf("Failed to log query: %v", err)
	}

	return results, analysis, nil
}

// score composes the confidence for one candidate: similarity plus category
// alignment, severity weight, frequency and pattern boosts, clamped to 1.0.
func (m *Matcher) score(analysis *models.QueryAnalysis, keyTerms []string, incident models.DbIncident) models.MatchResult {
	similarity := m.engine.Similarity(analysis.Tokens, incident.Keywords)

	categoryBoost := 0.0
	aligned := incident.Category == analysis.PrimaryCategory
	if aligned {
		categoryBoost = 0.25
	}

	severityBoost := severityWeights[incident.Severity]

	frequencyBoost := float64(incident.Frequency) / 50.0
	if frequencyBoost > 0.15 {
		frequencyBoost = 0.15
	}

	patternBoost := float64(analysis.PatternCount()) * 0.05

	confidence := similarity + categoryBoost + severityBoost + frequencyBoost + patternBoost
	if confidence > 1.0 {
		confidence = 1.0
	}

	keywordSet := make(map[string]bool, len(incident.Keywords))
	for _, k := range incident.Keywords {
		keywordSet[k] = true
	}
	tokenSet := make(map[string]bool, len(analysis.Tokens))
	exact := 0
	for _, t := range analysis.Tokens {
		if tokenSet[t] {
			continue
		}
		tokenSet[t] = true
		if keywordSet[t] {
			exact++
		}
	}

	return models.MatchResult{
		Incident:        incident,
		SimilarityScore: round3(similarity),
		ConfidenceScore: round3(confidence),
		ConfidenceLevel: ConfidenceLevel(confidence),
		MatchQuality: models.MatchQuality{
			ExactMatches:      exact,
			PartialMatches:    len(tokenSet) - exact,
			CategoryAlignment: aligned,
			PatternMatches:    len(analysis.Patterns),
		},
		AnalysisSummary: models.AnalysisSummary{
			PrimaryCategory: analysis.PrimaryCategory,
			KeyTermsMatched: exact,
			TotalKeyTerms:   len(keyTerms),
		},
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
