package db

import (
	"log"
	"os"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

var Neo4jDriver neo4j.DriverWithContext

// InitNeo4j connects the topology driver. The graph is optional: callers
// must tolerate a nil driver when NEO4J_URI is not set.
func InitNeo4j() {
	uri := os.Getenv("NEO4J_URI")
	if uri == "" {
		log.Println("NEO4J_URI not set, incident topology graph disabled")
		return
	}
	username := os.Getenv("NEO4J_USER")
	password := os.Getenv("NEO4J_PASSWORD")

	var err error
	Neo4jDriver, err = neo4j.NewDriverWithContext(
		uri,
		neo4j.BasicAuth(username, password, ""),
		func(c *neo4j.Config) {
			c.MaxConnectionLifetime = 5 * time.Minute
			c.MaxConnectionPoolSize = 50
			c.ConnectionAcquisitionTimeout = 10 * time.Second
		},
	)
	if err != nil {
		log.Fatalf("Neo4j connection failed: %v", err)
	}
	log.Println("Neo4j driver initialized successfully")
}

func GetNeo4jDriver() neo4j.DriverWithContext {
	return Neo4jDriver
}
