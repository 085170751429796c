package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/jobboard/internal/config"
	"github.com/justsurfingit/jobboard/internal/database"
	"github.com/justsurfingit/jobboard/internal/models"
	"github.com/justsurfingit/jobboard/internal/server"
	"github.com/justsurfingit/jobboard/internal/services"
)

func main() {
	// 1. Load configuration (.env is optional)
	cfg, err := config.LoadListing()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := config.NewLogger(cfg.LogLevel)
	gin.SetMode(cfg.HTTP.GinMode)

	// 2. Database connection + migrations
	db, err := database.Connect(cfg.DB, logger, models.ListingModels()...)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error("close database", "error", err)
		}
	}()

	// 3. Services and routes
	jobService := services.NewJobService(db, logger)
	router := server.NewListingRouter(cfg.HTTP, jobService, logger)

	// 4. Serve
	if err := server.Run(cfg.Addr, router, logger); err != nil {
		logger.Error("server failed", "error", err)
	}
}
