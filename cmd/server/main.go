package main

import (
	"github.com/labstack/echo/v4"
	"github.com/warblehq/warbler/backend/internal/router"
	"github.com/warblehq/warbler/backend/pkg/config"
	"github.com/warblehq/warbler/backend/pkg/logger"
	"github.com/warblehq/warbler/backend/validators"
)

func main() {
	// Load configuration
	cfg := config.Load()
	logger.Init(cfg.Env)

	// Initialize database connection
	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Log.Fatalf("Failed to initialize database: %v", err)
	}
	defer config.CloseDB(db)

	// Create Echo instance
	e := echo.New()

	// Validator
	e.Validator = validators.NewValidator()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, db, cfg)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
