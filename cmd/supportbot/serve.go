package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/ruby4mag/supportbot-go-backend/internal/auth"
	"github.com/ruby4mag/supportbot-go-backend/internal/automation"
	"github.com/ruby4mag/supportbot-go-backend/internal/db"
	"github.com/ruby4mag/supportbot-go-backend/internal/handlers"
	"github.com/ruby4mag/supportbot-go-backend/internal/kb"
	"github.com/ruby4mag/supportbot-go-backend/internal/match"
	"github.com/ruby4mag/supportbot-go-backend/internal/nlp"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
}

func runServe() error {
	policy, err := loadPolicy()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := kb.SeedMongo(ctx); err != nil {
		return err
	}
	db.InitNeo4j()

	catalog := kb.NewMongo()
	matcher := match.NewMatcher(catalog, nlp.NewEngine())
	ledger := automation.NewLedger()
	gate := automation.NewGate(catalog, policy, ledger, nil)
	executor := automation.NewExecutor(catalog, gate, automation.LogObserver{}, nil)
	handlers.Setup(catalog, matcher, gate, executor)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "X-Requested-With", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.POST("/register", handlers.Register)
	r.POST("/login", handlers.Login)
	r.POST("/refresh", handlers.RefreshToken)

	protected := r.Group("/api")
	protected.Use(auth.AuthMiddleware())
	{
		protected.GET("/permissions", handlers.GetPermissions)

		protected.POST("/query", handlers.Query)

		protected.GET("/incidents", handlers.Incidents)
		protected.GET("/incidents/:id", handlers.ViewIncident)
		protected.GET("/incidents/:id/graph", handlers.IncidentGraph)

		protected.POST("/automation/:id/validate", handlers.ValidateAutomation)
		protected.POST("/automation/:id/execute", handlers.ExecuteAutomation)
		protected.GET("/automation/executions", handlers.Executions)

		protected.GET("/dashboard", handlers.Dashboard)

		protected.GET("/resource", handlers.ProtectedResource)
	}

	log.Printf("supportbot API listening on %s", serveAddr)
	return r.Run(serveAddr)
}
