package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ruby4mag/supportbot-go-backend/internal/db"
	"github.com/ruby4mag/supportbot-go-backend/internal/models"
)

// Incidents lists knowledge base records with server-side pagination,
// per-column filters and sorting for the table UI.
func Incidents(c *gin.Context) {

	type Filter struct {
		Id    string `json:"id"`
		Value string `json:"value"`
	}

	type Sorting struct {
		Id   string `json:"id"`
		Desc bool   `json:"desc"`
	}
	start, _ := strconv.Atoi(c.DefaultQuery("start", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	globalFilter := c.Query("globalFilter")
	sortQuery := c.Query("sorting")

	var filters []Filter
	_ = json.Unmarshal([]byte(c.Query("filters")), &filters)

	var sorting []Sorting
	_ = json.Unmarshal([]byte(sortQuery), &sorting)

	filter := bson.M{}
	if globalFilter != "" {
		filter["$or"] = []bson.M{
			{"title": bson.M{"$regex": globalFilter, "$options": "i"}},
			{"description": bson.M{"$regex": globalFilter, "$options": "i"}},
			{"incidentid": bson.M{"$regex": globalFilter, "$options": "i"}},
		}
	}
	for _, f := range filters {
		filter[f.Id] = bson.M{"$regex": f.Value, "$options": "i"}
	}

	findOptions := options.Find()
	findOptions.SetSkip(int64(start))
	findOptions.SetLimit(int64(size))

	if len(sorting) > 0 {
		sortFields := bson.D{}
		for _, s := range sorting {
			sortOrder := 1
			if s.Desc {
				sortOrder = -1
			}
			sortFields = append(sortFields, bson.E{Key: s.Id, Value: sortOrder})
		}
		findOptions.SetSort(sortFields)
	}
	collection := db.GetCollection("incidents")

	cursor, err := collection.Find(ctx, filter, findOptions)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var incidents []models.DbIncident
	if err := cursor.All(ctx, &incidents); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	count, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if len(incidents) == 0 {
		incidents = []models.DbIncident{}
	}

	c.JSON(http.StatusOK, gin.H{
		"data":          incidents,
		"totalRowCount": count,
	})
}

// ViewIncident returns one knowledge base record by its incident id.
func ViewIncident(c *gin.Context) {
	id := c.Param("id")

	reqCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
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

	c.JSON(http.StatusOK, incident)
}
