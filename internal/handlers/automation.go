package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ruby4mag/supportbot-go-backend/internal/models"
)

// ValidateAutomation runs the safety gate for an incident's script without
// executing anything.
func ValidateAutomation(c *gin.Context) {
	id := c.Param("id")
	environment := c.DefaultQuery("environment", "production")

	validation, err := gate.Validate(c.Request.Context(), id, environment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, validation)
}

// ExecuteAutomation attempts a simulated remediation run. Rejections and
// missing confirmation/approval come back as 200s with a structured result;
// the caller inspects success and the flags.
func ExecuteAutomation(c *gin.Context) {
	id := c.Param("id")

	var request struct {
		Confirm     bool   `json:"confirm"`
		Approve     bool   `json:"approve"`
		Environment string `json:"environment"`
	}
	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if request.Environment == "" {
		request.Environment = "production"
	}

	result, err := executor.Execute(c.Request.Context(), id, request.Confirm, request.Approve, request.Environment)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if result.Success {
		recordAutomationRun()
	}

	c.JSON(http.StatusOK, result)
}

// Executions lists ledger records, optionally restricted to one incident and
// a trailing window in minutes.
func Executions(c *gin.Context) {
	incidentID := c.Query("incident")
	windowMinutes, _ := strconv.Atoi(c.Query("window"))

	var records []models.ExecutionRecord
	if incidentID != "" {
		cutoff := time.Time{}
		if windowMinutes > 0 {
			cutoff = time.Now().Add(-time.Duration(windowMinutes) * time.Minute)
		}
		records = gate.Ledger().ByIncident(incidentID, cutoff)
	} else {
		records = gate.Ledger().All()
	}

	if len(records) == 0 {
		records = []models.ExecutionRecord{}
	}

	c.JSON(http.StatusOK, gin.H{
		"data":          records,
		"totalRowCount": len(records),
	})
}
