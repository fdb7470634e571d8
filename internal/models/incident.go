package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Incident categories. The classifier vocabulary is keyed by these.
const (
	CategoryServer      = "server"
	CategoryDatabase    = "database"
	CategoryPerformance = "performance"
	CategoryStorage     = "storage"
	CategoryNetwork     = "network"
	CategoryApplication = "application"
	CategorySecurity    = "security"
	CategoryUnknown     = "unknown"
)

const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

// DbIncident is a knowledge base record describing a known problem, its
// resolution and an optional remediation script.
type DbIncident struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	IncidentID       string             `bson:"incidentid" json:"id"`
	Title            string             `bson:"title" json:"title"`
	Description      string             `bson:"description" json:"description"`
	Category         string             `bson:"category" json:"category"`
	Severity         string             `bson:"severity" json:"severity"`
	ResolutionSteps  []string           `bson:"resolutionsteps" json:"resolution_steps"`
	ResolutionTime   int                `bson:"resolutiontime" json:"resolution_time"`
	Frequency        int                `bson:"frequency" json:"frequency"`
	AutomationScript string             `bson:"automationscript,omitempty" json:"automation_script,omitempty"`
	Keywords         []string           `bson:"keywords" json:"keywords"`
	CreatedAt        time.Time          `bson:"createdat,omitempty" json:"created_at,omitempty"`
}

// HasAutomation reports whether a remediation script exists for the record.
func (i *DbIncident) HasAutomation() bool {
	return i.AutomationScript != ""
}

// QueryLog is one processed query appended to the querylogs collection.
type QueryLog struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	UserQuery         string             `bson:"userquery" json:"user_query"`
	MatchedIncidentID string             `bson:"matchedincidentid" json:"matched_incident_id"`
	ConfidenceScore   float64            `bson:"confidencescore" json:"confidence_score"`
	ResponseTimeMs    float64            `bson:"responsetimems" json:"response_time_ms"`
	Timestamp         time.Time          `bson:"timestamp" json:"timestamp"`
}

// KbStats is the dashboard summary of the knowledge base.
type KbStats struct {
	TotalIncidents      int            `json:"total_incidents"`
	TotalKeywords       int            `json:"total_keywords"`
	QueriesLogged       int            `json:"queries_logged"`
	AutomationAvailable int            `json:"automation_available"`
	AvgResolutionTime   float64        `json:"avg_resolution_time"`
	ByCategory          map[string]int `json:"by_category"`
	BySeverity          map[string]int `json:"by_severity"`
}
