package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ruby4mag/supportbot-go-backend/internal/automation"
)

var policyPath string

var rootCmd = &cobra.Command{
	Use:   "supportbot",
	Short: "Production support bot: incident matching and safe automation",
	Long: `supportbot matches free-text problem descriptions against a knowledge
base of known incidents, scores match confidence, and gates remediation
scripts behind safety checks before running them (simulated).`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&policyPath, "policy", "", "safety policy YAML file (default: built-in policy, or SAFETY_POLICY env)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(consoleCmd)
}

// loadPolicy resolves the safety policy from the --policy flag, the
// SAFETY_POLICY env var, or the compiled-in defaults.
func loadPolicy() (*automation.SafetyPolicy, error) {
	path := policyPath
	if path == "" {
		path = os.Getenv("SAFETY_POLICY")
	}
	return automation.LoadPolicy(path)
}
