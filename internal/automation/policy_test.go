package automation

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultPolicy(t *testing.T) {
	policy := DefaultPolicy()

	if len(policy.DangerousCommands) == 0 || len(policy.CriticalCommands) == 0 {
		t.Fatal("default policy missing command lists")
	}
	if policy.RateLimit.MaxExecutions != 3 || policy.RateLimit.Window() != time.Hour {
		t.Errorf("rate limit = %d per %v, want 3 per 1h", policy.RateLimit.MaxExecutions, policy.RateLimit.Window())
	}
	if policy.Production.BusinessHoursStart != 9 || policy.Production.BusinessHoursEnd != 17 {
		t.Errorf("business hours = %d-%d, want 9-17",
			policy.Production.BusinessHoursStart, policy.Production.BusinessHoursEnd)
	}
	if policy.EstimatedTimeSaved != 30 {
		t.Errorf("estimated time saved = %d, want 30", policy.EstimatedTimeSaved)
	}
}

func TestLoadPolicyEmptyPathReturnsDefaults(t *testing.T) {
	policy, err := LoadPolicy("")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(DefaultPolicy(), policy); diff != "" {
		t.Errorf("policy mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadPolicyOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "safety.yaml")
	data := []byte(`
production:
  require_confirmation: true
  allow_business_hours: true
  business_hours_start: 8
  business_hours_end: 18
rate_limit:
  max_executions: 5
  window_minutes: 30
estimated_time_saved: 45
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	policy, err := LoadPolicy(path)
	if err != nil {
		t.Fatal(err)
	}
	if !policy.Production.AllowBusinessHours {
		t.Error("allow_business_hours not applied")
	}
	if policy.Production.BusinessHoursStart != 8 || policy.Production.BusinessHoursEnd != 18 {
		t.Errorf("business hours = %d-%d, want 8-18",
			policy.Production.BusinessHoursStart, policy.Production.BusinessHoursEnd)
	}
	if policy.RateLimit.MaxExecutions != 5 || policy.RateLimit.Window() != 30*time.Minute {
		t.Errorf("rate limit = %d per %v", policy.RateLimit.MaxExecutions, policy.RateLimit.Window())
	}
	if policy.EstimatedTimeSaved != 45 {
		t.Errorf("estimated time saved = %d, want 45", policy.EstimatedTimeSaved)
	}
	// Untouched sections keep their defaults.
	if len(policy.DangerousCommands) != len(DefaultPolicy().DangerousCommands) {
		t.Error("dangerous command defaults lost on overlay")
	}
}

func TestLoadPolicyMissingFile(t *testing.T) {
	if _, err := LoadPolicy("/nonexistent/safety.yaml"); err == nil {
		t.Error("expected error for missing policy file")
	}
}
