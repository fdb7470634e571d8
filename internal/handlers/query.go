package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ruby4mag/supportbot-go-backend/internal/match"
	"github.com/ruby4mag/supportbot-go-backend/internal/models"
)

// Query runs the matching pipeline for a free-text problem description and
// returns ranked matches with a recommended action. When the top match
// carries an automation script the safety gate's verdict is included so the
// UI can offer one-click execution.
func Query(c *gin.Context) {
	var request struct {
		Text        string `json:"text"`
		Environment string `json:"environment"`
	}

	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if request.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query text is required"})
		return
	}
	if request.Environment == "" {
		request.Environment = "production"
	}

	results, analysis, err := matcher.FindMatches(c.Request.Context(), request.Text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	recordQuery(len(results) > 0)

	if len(results) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"analysis":           analysis,
			"matches":            []models.MatchResult{},
			"recommended_action": match.RecommendedAction(models.ConfidenceNoMatch, ""),
		})
		return
	}

	best := results[0]
	response := gin.H{
		"analysis":           analysis,
		"matches":            results,
		"recommended_action": match.RecommendedAction(best.ConfidenceLevel, best.Incident.Severity),
	}

	if best.Incident.HasAutomation() {
		validation, err := gate.Validate(c.Request.Context(), best.Incident.IncidentID, request.Environment)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		response["automation"] = validation
	}

	c.JSON(http.StatusOK, response)
}
