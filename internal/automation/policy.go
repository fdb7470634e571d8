package automation

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ProductionSafeguards restrict automation in the production environment.
type ProductionSafeguards struct {
	RequireConfirmation bool     `yaml:"require_confirmation"`
	ApprovalRequiredFor []string `yaml:"approval_required_for"`
	// AllowBusinessHours permits execution inside the business-hours
	// window. Off by default: automation is restricted to off-hours and
	// maintenance windows.
	AllowBusinessHours bool `yaml:"allow_business_hours"`
	BusinessHoursStart int  `yaml:"business_hours_start"`
	BusinessHoursEnd   int  `yaml:"business_hours_end"`
}

// RateLimit bounds repeated executions per incident in a rolling window.
type RateLimit struct {
	MaxExecutions int `yaml:"max_executions"`
	WindowMinutes int `yaml:"window_minutes"`
}

func (r RateLimit) Window() time.Duration {
	return time.Duration(r.WindowMinutes) * time.Minute
}

// SafetyPolicy is the automation gate configuration. Dangerous commands are
// an absolute block; critical commands require an extra approval step.
type SafetyPolicy struct {
	DangerousCommands  []string             `yaml:"dangerous_commands"`
	CriticalCommands   []string             `yaml:"critical_commands"`
	Production         ProductionSafeguards `yaml:"production"`
	RateLimit          RateLimit            `yaml:"rate_limit"`
	EstimatedTimeSaved int                  `yaml:"estimated_time_saved"`
}

// DefaultPolicy returns the built-in safety rules.
func DefaultPolicy() *SafetyPolicy {
	return &SafetyPolicy{
		DangerousCommands: []string{
			"rm -rf", "format", "mkfs", "dd if=", "chmod 777", "passwd", "fdisk",
			"> /dev/sd", "shutdown", "reboot", "halt", "init 0", "kill -9", "pkill",
		},
		CriticalCommands: []string{
			"drop database", "truncate table", "delete from", "alter table drop", "purge binary logs",
		},
		Production: ProductionSafeguards{
			RequireConfirmation: true,
			ApprovalRequiredFor: []string{"critical", "high"},
			AllowBusinessHours:  false,
			BusinessHoursStart:  9,
			BusinessHoursEnd:    17,
		},
		RateLimit: RateLimit{
			MaxExecutions: 3,
			WindowMinutes: 60,
		},
		EstimatedTimeSaved: 30,
	}
}

// LoadPolicy reads a YAML policy file over the defaults. An empty path
// returns the defaults unchanged.
func LoadPolicy(path string) (*SafetyPolicy, error) {
	policy := DefaultPolicy()
	if path == "" {
		return policy, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, policy); err != nil {
		return nil, err
	}
	return policy, nil
}
