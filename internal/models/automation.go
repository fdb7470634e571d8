package models

import "time"

// Script risk levels assigned by the safety gate.
const (
	RiskNone     = "none"
	RiskLow      = "low"
	RiskMedium   = "medium"
	RiskHigh     = "high"
	RiskCritical = "critical"
)

// Execution statuses recorded in the ledger.
const (
	ExecutionSuccess = "SUCCESS"
)

// AutomationValidation is the structured outcome of a safety gate check.
// Rejections are ordinary values, not errors: Valid=false plus a Reason.
type AutomationValidation struct {
	Valid                 bool   `json:"valid"`
	Reason                string `json:"reason,omitempty"`
	RiskLevel             string `json:"risk_level"`
	RequiresConfirmation  bool   `json:"requires_confirmation"`
	RequiresExtraApproval bool   `json:"requires_extra_approval"`
	Script                string `json:"script,omitempty"`
	Severity              string `json:"severity,omitempty"`
	Title                 string `json:"title,omitempty"`
	EstimatedTime         int    `json:"estimated_time,omitempty"`
}

// ExecutionStepLog is one completed step of a simulated run.
type ExecutionStepLog struct {
	Step        int       `json:"step"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Timestamp   time.Time `json:"timestamp"`
}

// ExecutionRecord is appended to the execution ledger and never mutated.
type ExecutionRecord struct {
	ExecutionID   string             `json:"execution_id"`
	IncidentID    string             `json:"incident_id"`
	Script        string             `json:"script"`
	Status        string             `json:"status"`
	RiskLevel     string             `json:"risk_level"`
	Environment   string             `json:"environment"`
	Timestamp     time.Time          `json:"timestamp"`
	ExecutionTime int                `json:"execution_time"`
	Details       []ExecutionStepLog `json:"details"`
}

// ExecutionResult is returned to the caller of an execution attempt.
type ExecutionResult struct {
	Success               bool   `json:"success"`
	ExecutionID           string `json:"execution_id,omitempty"`
	Message               string `json:"message"`
	TimeSavedMinutes      int    `json:"time_saved_minutes,omitempty"`
	RiskLevel             string `json:"risk_level"`
	RequiresConfirmation  bool   `json:"requires_confirmation,omitempty"`
	RequiresExtraApproval bool   `json:"requires_extra_approval,omitempty"`
}
