package models

// Confidence levels, highest first. Thresholds live in the matcher.
const (
	ConfidenceVeryHigh = "very_high"
	ConfidenceHigh     = "high"
	ConfidenceMedium   = "medium"
	ConfidenceLow      = "low"
	ConfidenceVeryLow  = "very_low"
	ConfidenceNoMatch  = "no_match"
)

// QueryAnalysis is the per-query NLP output. It lives only for the duration
// of the query that produced it.
type QueryAnalysis struct {
	Original        string              `json:"original"`
	Tokens          []string            `json:"tokens"`
	Patterns        map[string][]string `json:"patterns"`
	CategoryScores  map[string]float64  `json:"category_scores"`
	PrimaryCategory string              `json:"primary_category"`
	MatchedKeywords map[string][]string `json:"matched_keywords"`
}

// PatternCount is the total number of extracted pattern matches across all
// pattern names.
func (a *QueryAnalysis) PatternCount() int {
	n := 0
	for _, matches := range a.Patterns {
		n += len(matches)
	}
	return n
}

// MatchQuality breaks down how a candidate matched the query.
type MatchQuality struct {
	ExactMatches      int  `json:"exact_matches"`
	PartialMatches    int  `json:"partial_matches"`
	CategoryAlignment bool `json:"category_alignment"`
	PatternMatches    int  `json:"pattern_matches"`
}

// AnalysisSummary is the condensed analysis attached to each match.
type AnalysisSummary struct {
	PrimaryCategory string `json:"primary_category"`
	KeyTermsMatched int    `json:"key_terms_matched"`
	TotalKeyTerms   int    `json:"total_key_terms"`
}

// MatchResult is one scored candidate for a query.
type MatchResult struct {
	Incident        DbIncident      `json:"incident"`
	SimilarityScore float64         `json:"similarity_score"`
	ConfidenceScore float64         `json:"confidence_score"`
	ConfidenceLevel string          `json:"confidence_level"`
	MatchQuality    MatchQuality    `json:"match_quality"`
	AnalysisSummary AnalysisSummary `json:"analysis_summary"`
}
