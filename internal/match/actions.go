package match

import "github.com/ruby4mag/supportbot-go-backend/internal/models"

// recommendedActions maps confidence level to severity-specific actions.
// "default" covers severities with no dedicated entry.
var recommendedActions = map[string]map[string]string{
	models.ConfidenceVeryHigh: {
		models.SeverityCritical: "IMMEDIATE AUTOMATION - Critical issue with high confidence",
		"default":               "AUTOMATE - Bot can execute fix automatically",
	},
	models.ConfidenceHigh: {
		models.SeverityCritical: "SUGGEST WITH CAUTION - Critical issue, suggest solution with review",
		"default":               "SUGGEST - Bot recommends solution, manual execution needed",
	},
	models.ConfidenceMedium: {
		models.SeverityCritical: "ESCALATE IMMEDIATELY - Critical issue needs human expertise",
		"default":               "ESCALATE - Human engineer should review",
	},
	models.ConfidenceLow: {
		models.SeverityCritical: "ESCALATE URGENT - Urgent human review needed",
		"default":               "HUMAN REVIEW - Escalate to engineering team",
	},
	models.ConfidenceVeryLow: {
		"default": "EXPERT REVIEW - Senior engineer investigation required",
	},
	models.ConfidenceNoMatch: {
		"default": "MANUAL TROUBLESHOOTING - No match found, needs manual investigation",
	},
}

// RecommendedAction maps a confidence level and incident severity to the
// action an operator should take.
func RecommendedAction(confidenceLevel, severity string) string {
	entries, ok := recommendedActions[confidenceLevel]
	if !ok {
		return "UNKNOWN ACTION"
	}
	if severity != "" {
		if action, ok := entries[severity]; ok {
			return action
		}
	}
	if action, ok := entries["default"]; ok {
		return action
	}
	return "REVIEW NEEDED"
}
