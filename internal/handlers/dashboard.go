package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Dashboard summarizes the knowledge base, recent query activity, session
// metrics and the execution ledger.
func Dashboard(c *gin.Context) {
	stats, err := catalog.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	recent, err := catalog.RecentQueries(c.Request.Context(), 10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	startedAt, queries, matches, runs := sessionSnapshot()
	ledgerStats := gate.Ledger().Stats(gate.Policy().EstimatedTimeSaved)

	c.JSON(http.StatusOK, gin.H{
		"knowledge_base": stats,
		"recent_queries": recent,
		"session": gin.H{
			"started_at":      startedAt,
			"uptime_seconds":  int(time.Since(startedAt).Seconds()),
			"queries_handled": queries,
			"matches_found":   matches,
			"automation_runs": runs,
		},
		"executions": ledgerStats,
	})
}
