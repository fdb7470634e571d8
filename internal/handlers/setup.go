package handlers

import (
	"context"
	"sync"
	"time"

	"github.com/ruby4mag/supportbot-go-backend/internal/automation"
	"github.com/ruby4mag/supportbot-go-backend/internal/kb"
	"github.com/ruby4mag/supportbot-go-backend/internal/match"
)

var ctx = context.Background()

var (
	catalog  kb.Catalog
	matcher  *match.Matcher
	gate     *automation.Gate
	executor *automation.Executor
)

// session metrics shown on the dashboard. Reset on process restart.
var session struct {
	mu             sync.Mutex
	startedAt      time.Time
	queriesHandled int
	matchesFound   int
	automationRuns int
}

// Setup wires the shared services used by the handlers. Called once from the
// serve command before routes are registered.
func Setup(c kb.Catalog, m *match.Matcher, g *automation.Gate, e *automation.Executor) {
	catalog = c
	matcher = m
	gate = g
	executor = e
	session.startedAt = time.Now()
}

func recordQuery(matched bool) {
	session.mu.Lock()
	defer session.mu.Unlock()
	session.queriesHandled++
	if matched {
		session.matchesFound++
	}
}

func recordAutomationRun() {
	session.mu.Lock()
	defer session.mu.Unlock()
	session.automationRuns++
}

func sessionSnapshot() (time.Time, int, int, int) {
	session.mu.Lock()
	defer session.mu.Unlock()
	return session.startedAt, session.queriesHandled, session.matchesFound, session.automationRuns
}
