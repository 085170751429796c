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
	cfg, err := config.LoadApply()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := config.NewLogger(cfg.LogLevel)
	gin.SetMode(cfg.HTTP.GinMode)

	// 2. Database connection + migrations
	db, err := database.Connect(cfg.DB, logger, models.ApplyModels()...)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			logger.Error("close database", "error", err)
		}
	}()

	// 3. Listing service client
	listing := services.NewListingClient(cfg.Listing.BaseURL, cfg.Listing.Timeout)
	logger.Info("job listing client configured",
		"base_url", cfg.Listing.BaseURL,
		"timeout", cfg.Listing.Timeout.String(),
		"unavailable_as_not_found", cfg.Listing.UnavailableAsNotFound,
	)

	// 4. Services and routes
	appService, err := services.NewApplicationService(services.ApplicationServiceOptions{
		DB:                    db,
		Fetcher:               listing,
		Logger:                logger,
		UnavailableAsNotFound: cfg.Listing.UnavailableAsNotFound,
	})
	if err != nil {
		log.Fatalf("failed to create application service: %v", err)
	}
	router := server.NewApplyRouter(cfg.HTTP, appService, logger)

	// 5. Serve
	if err := server.Run(cfg.Addr, router, logger); err != nil {
		logger.Error("server failed", "error", err)
	}
}
