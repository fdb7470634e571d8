package kb

import (
	"context"
	"log"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ruby4mag/supportbot-go-backend/internal/db"
	"github.com/ruby4mag/supportbot-go-backend/internal/models"
)

// Mongo is the production catalog backed by the incidents and querylogs
// collections.
type Mongo struct{}

func NewMongo() *Mongo {
	return &Mongo{}
}

// SeedMongo upserts the bundled incident dataset so a fresh database is
// immediately usable. Existing frequency counters are preserved.
func SeedMongo(ctx context.Context) error {
	collection := db.GetCollection("incidents")
	for _, incident := range SeedIncidents() {
		filter := bson.M{"incidentid": incident.IncidentID}
		update := bson.M{
			"$set": bson.M{
				"title":            incident.Title,
				"description":      incident.Description,
				"category":         incident.Category,
				"severity":         incident.Severity,
				"resolutionsteps":  incident.ResolutionSteps,
				"resolutiontime":   incident.ResolutionTime,
				"automationscript": incident.AutomationScript,
				"keywords":         incident.Keywords,
			},
			"$setOnInsert": bson.M{
				"frequency": 1,
				"createdat": time.Now(),
			},
		}
		opts := options.Update().SetUpsert(true)
		if _, err := collection.UpdateOne(ctx, filter, update, opts); err != nil {
			return err
		}
	}
	log.Printf("Knowledge base seeded with %d incidents", len(SeedIncidents()))
	return nil
}

func (m *Mongo) SearchByKeywords(ctx context.Context, keywords []string) ([]models.DbIncident, error) {
	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}

	collection := db.GetCollection("incidents")
	cursor, err := collection.Find(ctx, bson.M{"keywords": bson.M{"$in": lowered}})
	if err != nil {
		return nil, err
	}
	var incidents []models.DbIncident
	if err := cursor.All(ctx, &incidents); err != nil {
		return nil, err
	}
	return rankByMatches(incidents, lowered), nil
}

func (m *Mongo) GetIncident(ctx context.Context, incidentID string) (*models.DbIncident, error) {
	collection := db.GetCollection("incidents")
	var incident models.DbIncident
	err := collection.FindOne(ctx, bson.M{"incidentid": incidentID}).Decode(&incident)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &incident, nil
}

func (m *Mongo) IncrementFrequency(ctx context.Context, incidentID string) error {
	collection := db.GetCollection("incidents")
	_, err := collection.UpdateOne(ctx,
		bson.M{"incidentid": incidentID},
		bson.M{"$inc": bson.M{"frequency": 1}},
	)
	return err
}

func (m *Mongo) LogQuery(ctx context.Context, entry models.QueryLog) error {
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}
	collection := db.GetCollection("querylogs")
	_, err := collection.InsertOne(ctx, entry)
	return err
}

func (m *Mongo) RecentQueries(ctx context.Context, limit int) ([]models.QueryLog, error) {
	collection := db.GetCollection("querylogs")
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))
	cursor, err := collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var logs []models.QueryLog
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (m *Mongo) Stats(ctx context.Context) (*models.KbStats, error) {
	collection := db.GetCollection("incidents")
	cursor, err := collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	var incidents []models.DbIncident
	if err := cursor.All(ctx, &incidents); err != nil {
		return nil, err
	}

	queries, err := db.GetCollection("querylogs").CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	stats := summarize(incidents)
	stats.QueriesLogged = int(queries)
	return stats, nil
}

// summarize computes KB statistics from a full incident listing. Shared with
// the in-memory catalog.
func summarize(incidents []models.DbIncident) *models.KbStats {
	stats := &models.KbStats{
		TotalIncidents: len(incidents),
		ByCategory:     map[string]int{},
		BySeverity:     map[string]int{},
	}
	totalTime := 0
	for _, inc := range incidents {
		stats.ByCategory[inc.Category]++
		stats.BySeverity[inc.Severity]++
		stats.TotalKeywords += len(inc.Keywords)
		totalTime += inc.ResolutionTime
		if inc.HasAutomation() {
			stats.AutomationAvailable++
		}
	}
	if len(incidents) > 0 {
		stats.AvgResolutionTime = float64(totalTime) / float64(len(incidents))
	}
	return stats
}
