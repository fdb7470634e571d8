package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ruby4mag/supportbot-go-backend/internal/automation"
	"github.com/ruby4mag/supportbot-go-backend/internal/kb"
	"github.com/ruby4mag/supportbot-go-backend/internal/match"
	"github.com/ruby4mag/supportbot-go-backend/internal/models"
	"github.com/ruby4mag/supportbot-go-backend/internal/nlp"
)

var (
	consoleOffline     bool
	consoleEnvironment string
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Interactive query console",
	Long: `console reads problem descriptions from stdin and prints matched
incidents, confidence and recommended actions. Commands: auto <ID>,
search <keyword>, categories, dashboard, recent, examples, help, exit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConsole()
	},
}

func init() {
	consoleCmd.Flags().BoolVar(&consoleOffline, "offline", false, "use the bundled in-memory knowledge base instead of MongoDB")
	consoleCmd.Flags().StringVar(&consoleEnvironment, "environment", "production", "environment used for automation safety checks")
}

// consoleObserver prints execution progress to stdout.
type consoleObserver struct{}

func (consoleObserver) Step(num, total int, description string) {
	fmt.Printf("  [%d/%d] %s\n", num, total, description)
}

func (consoleObserver) ScriptLine(line string) {
	fmt.Printf("      $ %s\n", line)
}

type console struct {
	catalog  kb.Catalog
	matcher  *match.Matcher
	gate     *automation.Gate
	executor *automation.Executor
	reader   *bufio.Scanner
}

func runConsole() error {
	policy, err := loadPolicy()
	if err != nil {
		return err
	}

	var catalog kb.Catalog
	if consoleOffline {
		catalog = kb.NewMemoryFromSeed()
		fmt.Println("Using bundled in-memory knowledge base (offline mode)")
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := kb.SeedMongo(ctx); err != nil {
			cancel()
			return err
		}
		cancel()
		catalog = kb.NewMongo()
	}

	ledger := automation.NewLedger()
	gate := automation.NewGate(catalog, policy, ledger, nil)
	co := &console{
		catalog:  catalog,
		matcher:  match.NewMatcher(catalog, nlp.NewEngine()),
		gate:     gate,
		executor: automation.NewExecutor(catalog, gate, consoleObserver{}, nil),
		reader:   bufio.NewScanner(os.Stdin),
	}
	return co.loop()
}

func (co *console) loop() error {
	fmt.Println("Production Support Bot. Describe a problem, or type 'help'.")
	for {
		fmt.Print("> ")
		if !co.reader.Scan() {
			return co.reader.Err()
		}
		line := strings.TrimSpace(co.reader.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		switch strings.ToLower(fields[0]) {
		case "exit", "quit":
			fmt.Println("Bye.")
			return nil
		case "help":
			co.printHelp()
		case "auto":
			if len(fields) < 2 {
				fmt.Println("Usage: auto <INCIDENT_ID>")
				continue
			}
			co.runAutomation(strings.ToUpper(fields[1]))
		case "search":
			if len(fields) < 2 {
				fmt.Println("Usage: search <keyword> [keyword...]")
				continue
			}
			co.search(fields[1:])
		case "categories":
			co.printCategories()
		case "dashboard":
			co.printDashboard()
		case "recent":
			co.printRecent()
		case "examples":
			co.printExamples()
		default:
			co.query(line)
		}
	}
}

func (co *console) query(text string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	results, analysis, err := co.matcher.FindMatches(ctx, text)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Printf("Category: %s", analysis.PrimaryCategory)
	if len(analysis.Patterns) > 0 {
		fmt.Printf("  Patterns: %v", analysis.Patterns)
	}
	fmt.Println()

	if len(results) == 0 {
		fmt.Println("No matches found.")
		fmt.Println("Action:", match.RecommendedAction(models.ConfidenceNoMatch, ""))
		return
	}

	for i, r := range results {
		if i >= 3 {
			break
		}
		fmt.Printf("%d. [%s] %s  (confidence %.3f, %s, severity %s)\n",
			i+1, r.Incident.IncidentID, r.Incident.Title,
			r.ConfidenceScore, r.ConfidenceLevel, r.Incident.Severity)
	}

	best := results[0]
	fmt.Println("Action:", match.RecommendedAction(best.ConfidenceLevel, best.Incident.Severity))
	for i, step := range best.Incident.ResolutionSteps {
		fmt.Printf("   %d) %s\n", i+1, step)
	}
	if best.Incident.HasAutomation() {
		fmt.Printf("Automation available. Run it with: auto %s\n", best.Incident.IncidentID)
	}
}

func (co *console) runAutomation(incidentID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	validation, err := co.gate.Validate(ctx, incidentID, consoleEnvironment)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if !validation.Valid {
		fmt.Printf("Cannot execute automation: %s (risk: %s)\n", validation.Reason, validation.RiskLevel)
		return
	}

	fmt.Printf("Incident: %s  risk: %s\nScript:\n", validation.Title, validation.RiskLevel)
	for _, line := range strings.Split(validation.Script, "\n") {
		fmt.Printf("   %s\n", line)
	}

	confirm := true
	if validation.RequiresConfirmation {
		confirm = co.ask(fmt.Sprintf("Confirm execution for %s severity issue? (yes/no): ", validation.Severity))
	}
	approve := true
	if validation.RequiresExtraApproval {
		approve = co.ask("This script contains critical operations. Approve? (yes/no): ")
	}

	result, err := co.executor.Execute(ctx, incidentID, confirm, approve, consoleEnvironment)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println(result.Message)
	if result.Success {
		fmt.Printf("Execution ID: %s  Estimated time saved: %d minutes\n", result.ExecutionID, result.TimeSavedMinutes)
	}
}

func (co *console) ask(prompt string) bool {
	fmt.Print(prompt)
	if !co.reader.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(co.reader.Text()))
	return answer == "yes" || answer == "y"
}

func (co *console) search(keywords []string) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	incidents, err := co.catalog.SearchByKeywords(ctx, keywords)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if len(incidents) == 0 {
		fmt.Println("No incidents match those keywords.")
		return
	}
	for _, inc := range incidents {
		fmt.Printf("[%s] %s  (category %s, severity %s, seen %d times)\n",
			inc.IncidentID, inc.Title, inc.Category, inc.Severity, inc.Frequency)
	}
}

func (co *console) printCategories() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stats, err := co.catalog.Stats(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	for _, category := range co.matcher.Engine().Categories() {
		fmt.Printf("%-12s %d incidents\n", category, stats.ByCategory[category])
	}
}

func (co *console) printDashboard() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	stats, err := co.catalog.Stats(ctx)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Printf("Incidents: %d  Keywords: %d  Automation coverage: %d  Avg resolution: %.1f min  Queries logged: %d\n",
		stats.TotalIncidents, stats.TotalKeywords, stats.AutomationAvailable, stats.AvgResolutionTime, stats.QueriesLogged)

	ledgerStats := co.gate.Ledger().Stats(co.gate.Policy().EstimatedTimeSaved)
	fmt.Printf("Executions this session: %d  Successful: %d  Time saved: %d min\n",
		ledgerStats.TotalExecutions, ledgerStats.Successful, ledgerStats.TimeSavedMinutes)
}

func (co *console) printRecent() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logs, err := co.catalog.RecentQueries(ctx, 5)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	if len(logs) == 0 {
		fmt.Println("No queries logged yet.")
		return
	}
	for _, entry := range logs {
		fmt.Printf("%s  %-50q -> %s (%.3f)\n",
			entry.Timestamp.Format("15:04:05"), entry.UserQuery, entry.MatchedIncidentID, entry.ConfidenceScore)
	}
}

func (co *console) printExamples() {
	examples := []string{
		"tomcat server not responding on port 8080",
		"mysql connection pool exhausted",
		"disk space full on /var partition",
		"ssl certificate expired on load balancer",
		"application memory leak causing OOM",
	}
	fmt.Println("Try one of these:")
	for _, e := range examples {
		fmt.Printf("   %s\n", e)
	}
}

func (co *console) printHelp() {
	fmt.Println(`Commands:
  <free text>     match a problem description against the knowledge base
  auto <ID>       validate and execute the automation for an incident
  search <kw...>  list incidents by exact keyword
  categories      incident counts per category
  dashboard       knowledge base and execution statistics
  recent          recently logged queries
  examples        example problem descriptions
  exit            quit`)
}
