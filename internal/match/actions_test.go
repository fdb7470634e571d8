package match

import (
	"testing"

	"github.com/ruby4mag/supportbot-go-backend/internal/models"
)

func TestRecommendedAction(t *testing.T) {
	tests := []struct {
		level    string
		severity string
		want     string
	}{
		{models.ConfidenceVeryHigh, models.SeverityCritical, "IMMEDIATE AUTOMATION - Critical issue with high confidence"},
		{models.ConfidenceVeryHigh, models.SeverityLow, "AUTOMATE - Bot can execute fix automatically"},
		{models.ConfidenceHigh, models.SeverityCritical, "SUGGEST WITH CAUTION - Critical issue, suggest solution with review"},
		{models.ConfidenceHigh, models.SeverityMedium, "SUGGEST - Bot recommends solution, manual execution needed"},
		{models.ConfidenceMedium, models.SeverityCritical, "ESCALATE IMMEDIATELY - Critical issue needs human expertise"},
		{models.ConfidenceMedium, models.SeverityHigh, "ESCALATE - Human engineer should review"},
		{models.ConfidenceLow, models.SeverityCritical, "ESCALATE URGENT - Urgent human review needed"},
		{models.ConfidenceLow, "", "HUMAN REVIEW - Escalate to engineering team"},
		{models.ConfidenceVeryLow, models.SeverityCritical, "EXPERT REVIEW - Senior engineer investigation required"},
		{models.ConfidenceNoMatch, "", "MANUAL TROUBLESHOOTING - No match found, needs manual investigation"},
	}

	for _, tc := range tests {
		if got := RecommendedAction(tc.level, tc.severity); got != tc.want {
			t.Errorf("RecommendedAction(%q, %q) = %q, want %q", tc.level, tc.severity, got, tc.want)
		}
	}
}

func TestRecommendedActionUnknownLevel(t *testing.T) {
	if got := RecommendedAction("bogus", models.SeverityHigh); got != "UNKNOWN ACTION" {
		t.Errorf("got %q, want UNKNOWN ACTION", got)
	}
}
