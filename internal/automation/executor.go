package automation

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/ruby4mag/supportbot-go-backend/internal/kb"
	"github.com/ruby4mag/supportbot-go-backend/internal/models"
)

// executionSteps is the fixed simulated run sequence. Durations are in
// abstract units; the executor sleeps 300ms per unit through its sleep hook.
var executionSteps = []struct {
	description string
	duration    int
}{
	{"Safety validation and pre-flight checks", 1},
	{"Reviewing automation script", 1},
	{"Creating backup/restore point", 2},
	{"Executing automation commands", 3},
	{"Monitoring execution progress", 2},
	{"Verifying results and system health", 2},
	{"Logging execution details", 1},
}

// StepObserver receives progress events from a simulated run.
type StepObserver interface {
	Step(num, total int, description string)
	ScriptLine(line string)
}

// NopObserver discards progress events. Used in tests.
type NopObserver struct{}

func (NopObserver) Step(int, int, string) {}
func (NopObserver) ScriptLine(string)     {}

// LogObserver writes progress events to the standard logger.
type LogObserver struct{}

func (LogObserver) Step(num, total int, description string) {
	log.Printf("Step %d/%d: %s", num, total, description)
}

func (LogObserver) ScriptLine(line string) {
	log.Printf("   %s", line)
}

// Executor performs simulated remediation runs that passed the gate. No
// real commands are invoked; the run is a timed sequence of reported steps.
type Executor struct {
	catalog  kb.Catalog
	gate     *Gate
	ledger   *Ledger
	clock    Clock
	observer StepObserver
	sleep    func(time.Duration)
}

// NewExecutor wires an executor. A nil observer discards progress and a nil
// sleep uses time.Sleep; tests pass a no-op sleep.
func NewExecutor(catalog kb.Catalog, gate *Gate, observer StepObserver, sleep func(time.Duration)) *Executor {
	if observer == nil {
		observer = NopObserver{}
	}
	if sleep == nil {
		sleep = time.Sleep
	}
	return &Executor{
		catalog:  catalog,
		gate:     gate,
		ledger:   gate.Ledger(),
		clock:    gate.clock,
		observer: observer,
		sleep:    sleep,
	}
}

// Execute validates and, if permitted and confirmed, simulates the
// remediation run, appends it to the ledger and increments the incident
// frequency. Missing confirmation or approval returns a structured result
// without touching the ledger.
func (e *Executor) Execute(ctx context.Context, incidentID string, confirm, approve bool, environment string) (*models.ExecutionResult, error) {
	validation, err := e.gate.Validate(ctx, incidentID, environment)
	if err != nil {
		return nil, err
	}

	if !validation.Valid {
		return &models.ExecutionResult{
			Success:   false,
			Message:   fmt.Sprintf("Cannot execute automation: %s", validation.Reason),
			RiskLevel: validation.RiskLevel,
		}, nil
	}

	if validation.RequiresConfirmation && !confirm {
		return &models.ExecutionResult{
			Success:               false,
			Message:               fmt.Sprintf("Automation requires confirmation for %s severity issue", validation.Severity),
			RiskLevel:             validation.RiskLevel,
			RequiresConfirmation:  true,
			RequiresExtraApproval: validation.RequiresExtraApproval,
		}, nil
	}

	if validation.RequiresExtraApproval && !approve {
		return &models.ExecutionResult{
			Success:               false,
			Message:               "Automation requires extra approval for critical operations",
			RiskLevel:             validation.RiskLevel,
			RequiresExtraApproval: true,
		}, nil
	}

	executionID := fmt.Sprintf("AUTO_%s_%s", e.clock.Now().Format("20060102_150405"), incidentID)

	details := make([]models.ExecutionStepLog, 0, len(executionSteps))
	totalDuration := 0
	for i, step := range executionSteps {
		e.observer.Step(i+1, len(executionSteps), step.description)
		e.sleep(time.Duration(step.duration*300) * time.Millisecond)
		details = append(details, models.ExecutionStepLog{
			Step:        i + 1,
			Description: step.description,
			Status:      "completed",
			Timestamp:   e.clock.Now(),
		})
		totalDuration += step.duration
	}

	for _, line := range strings.Split(validation.Script, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		e.observer.ScriptLine(line)
		e.sleep(100 * time.Millisecond)
	}

	e.ledger.Append(models.ExecutionRecord{
		ExecutionID:   executionID,
		IncidentID:    incidentID,
		Script:        validation.Script,
		Status:        models.ExecutionSuccess,
		RiskLevel:     validation.RiskLevel,
		Environment:   environment,
		Timestamp:     e.clock.Now(),
		ExecutionTime: totalDuration,
		Details:       details,
	})

	if err := e.catalog.IncrementFrequency(ctx, incidentID); err != nil {
		log.Printf("Failed to increment frequency for %s: %v", incidentID, err)
	}

	return &models.ExecutionResult{
		Success:          true,
		ExecutionID:      executionID,
		Message:          "Automation executed successfully (simulated)",
		TimeSavedMinutes: validation.EstimatedTime,
		RiskLevel:        validation.RiskLevel,
	}, nil
}
