package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/ruby4mag/supportbot-go-backend/internal/db"
)

type graphNode struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Type  string `json:"type"`
}

type graphEdge struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label"`
}

// IncidentGraph returns the related-incident topology for one incident:
// incidents connected through shared keywords, plus its category node. Uses
// neo4j when the driver is configured and falls back to computing the
// neighborhood from the catalog otherwise.
func IncidentGraph(c *gin.Context) {
	id := c.Param("id")

	reqCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	incident, err := catalog.GetIncident(reqCtx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if incident == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Incident not found"})
		return
	}

	nodes := []graphNode{
		{ID: incident.IncidentID, Label: incident.Title, Type: "incident"},
		{ID: "category:" + incident.Category, Label: incident.Category, Type: "category"},
	}
	edges := []graphEdge{
		{From: incident.IncidentID, To: "category:" + incident.Category, Label: "IN_CATEGORY"},
	}
	seen := map[string]bool{incident.IncidentID: true}

	neo4jDriver := db.GetNeo4jDriver()
	if neo4jDriver != nil {
		session := neo4jDriver.NewSession(reqCtx, neo4j.SessionConfig{DatabaseName: "neo4j"})
		defer session.Close(reqCtx)

		cypherQuery := `
		MATCH (root:Incident {id: $id})-[:HAS_KEYWORD]->(k:Keyword)<-[:HAS_KEYWORD]-(other:Incident)
		RETURN other.id AS id, other.title AS title, collect(DISTINCT k.word) AS shared
		LIMIT 50
		`
		res, err := session.Run(reqCtx, cypherQuery, map[string]interface{}{"id": incident.IncidentID})
		if err == nil {
			for res.Next(reqCtx) {
				rec := res.Record()
				otherID, ok1 := rec.Get("id")
				title, ok2 := rec.Get("title")
				shared, ok3 := rec.Get("shared")
				if !ok1 || !ok2 || !ok3 {
					continue
				}
				addNeighbor(&nodes, &edges, seen, incident.IncidentID, otherID.(string), title.(string), toStrings(shared))
			}
			c.JSON(http.StatusOK, gin.H{"nodes": nodes, "edges": edges, "source": "neo4j"})
			return
		}
		log.Printf("Neo4j topology query failed, falling back to catalog: %v", err)
	}

	// Catalog fallback: neighbors are incidents retrieved by this
	// incident's own keywords.
	related, err := catalog.SearchByKeywords(reqCtx, incident.Keywords)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	rootKeywords := make(map[string]bool, len(incident.Keywords))
	for _, k := range incident.Keywords {
		rootKeywords[k] = true
	}
	for _, other := range related {
		if other.IncidentID == incident.IncidentID {
			continue
		}
		var shared []string
		for _, k := range other.Keywords {
			if rootKeywords[k] {
				shared = append(shared, k)
			}
		}
		addNeighbor(&nodes, &edges, seen, incident.IncidentID, other.IncidentID, other.Title, shared)
	}

	c.JSON(http.StatusOK, gin.H{"nodes": nodes, "edges": edges, "source": "catalog"})
}

func addNeighbor(nodes *[]graphNode, edges *[]graphEdge, seen map[string]bool, rootID, otherID, title string, shared []string) {
	if !seen[otherID] {
		seen[otherID] = true
		*nodes = append(*nodes, graphNode{ID: otherID, Label: title, Type: "incident"})
	}
	for _, word := range shared {
		keywordID := "keyword:" + word
		if !seen[keywordID] {
			seen[keywordID] = true
			*nodes = append(*nodes, graphNode{ID: keywordID, Label: word, Type: "keyword"})
			*edges = append(*edges, graphEdge{From: rootID, To: keywordID, Label: "HAS_KEYWORD"})
		}
		*edges = append(*edges, graphEdge{From: otherID, To: keywordID, Label: "HAS_KEYWORD"})
	}
}

func toStrings(v interface{}) []string {
	items, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
