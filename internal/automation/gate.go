package automation

import (
	"context"
	"fmt"
	"strings"

	"github.com/ruby4mag/supportbot-go-backend/internal/kb"
	"github.com/ruby4mag/supportbot-go-backend/internal/models"
)

// Verbs used for residual risk classification. Substring matches, so
// "restart" also hits "start".
var (
	highRiskVerbs   = []string{"delete", "drop", "truncate", "purge"}
	mediumRiskVerbs = []string{"stop", "start", "reconfigure"}
)

// Gate decides whether a remediation script may run and at what risk level.
// Every "can't proceed" outcome is a structured AutomationValidation, never
// an error; errors are reserved for catalog failures.
type Gate struct {
	catalog kb.Catalog
	policy  *SafetyPolicy
	ledger  *Ledger
	clock   Clock
}

func NewGate(catalog kb.Catalog, policy *SafetyPolicy, ledger *Ledger, clock Clock) *Gate {
	if clock == nil {
		clock = SystemClock
	}
	return &Gate{catalog: catalog, policy: policy, ledger: ledger, clock: clock}
}

// Ledger exposes the execution ledger for reporting layers.
func (g *Gate) Ledger() *Ledger {
	return g.ledger
}

// Policy exposes the active safety policy.
func (g *Gate) Policy() *SafetyPolicy {
	return g.policy
}

// Validate runs the safety checks for an incident's remediation script in
// the given environment.
func (g *Gate) Validate(ctx context.Context, incidentID, environment string) (*models.AutomationValidation, error) {
	incident, err := g.catalog.GetIncident(ctx, incidentID)
	if err != nil {
		return nil, err
	}
	if incident == nil || !incident.HasAutomation() {
		return &models.AutomationValidation{
			Valid:     false,
			Reason:    "No automation script available",
			RiskLevel: models.RiskNone,
		}, nil
	}

	script := strings.ToLower(incident.AutomationScript)

	// Dangerous commands are an absolute block. No confirmation or
	// approval overrides this.
	for _, dangerous := range g.policy.DangerousCommands {
		if strings.Contains(script, dangerous) {
			return &models.AutomationValidation{
				Valid:     false,
				Reason:    fmt.Sprintf("Dangerous command detected: %s", dangerous),
				RiskLevel: models.RiskCritical,
			}, nil
		}
	}

	requiresExtraApproval := false
	for _, critical := range g.policy.CriticalCommands {
		if strings.Contains(script, critical) {
			requiresExtraApproval = true
			break
		}
	}

	riskLevel := models.RiskLow
	if containsAny(script, highRiskVerbs) {
		riskLevel = models.RiskHigh
	} else if containsAny(script, mediumRiskVerbs) {
		riskLevel = models.RiskMedium
	}

	requiresConfirmation := false
	if environment == "production" {
		safeguards := g.policy.Production
		requiresConfirmation = safeguards.RequireConfirmation
		for _, severity := range safeguards.ApprovalRequiredFor {
			if incident.Severity == severity {
				requiresConfirmation = true
				break
			}
		}

		hour := g.clock.Now().Hour()
		if !safeguards.AllowBusinessHours && hour >= safeguards.BusinessHoursStart && hour < safeguards.BusinessHoursEnd {
			return &models.AutomationValidation{
				Valid:     false,
				Reason:    "Automation not allowed during business hours",
				RiskLevel: riskLevel,
			}, nil
		}
	}

	cutoff := g.clock.Now().Add(-g.policy.RateLimit.Window())
	if g.ledger.CountSince(incidentID, cutoff) >= g.policy.RateLimit.MaxExecutions {
		return &models.AutomationValidation{
			Valid:     false,
			Reason:    "Too many recent executions (rate limit exceeded)",
			RiskLevel: models.RiskHigh,
		}, nil
	}

	return &models.AutomationValidation{
		Valid:                 true,
		RiskLevel:             riskLevel,
		RequiresConfirmation:  requiresConfirmation || incident.Severity == models.SeverityCritical,
		RequiresExtraApproval: requiresExtraApproval,
		Script:                incident.AutomationScript,
		Severity:              incident.Severity,
		Title:                 incident.Title,
		EstimatedTime:         g.policy.EstimatedTimeSaved,
	}, nil
}

func containsAny(s string, substrings []string) bool {
	for _, sub := range substrings {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
