package router

import (
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/warblehq/warbler/backend/internal/auth"
	"github.com/warblehq/warbler/backend/internal/handlers"
	"github.com/warblehq/warbler/backend/internal/metrics"
	"github.com/warblehq/warbler/backend/internal/middleware"
	"github.com/warblehq/warbler/backend/internal/models"
	"github.com/warblehq/warbler/backend/internal/repositories"
	"github.com/warblehq/warbler/backend/pkg/config"
	"github.com/warblehq/warbler/backend/pkg/logger"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	logger.Log.Info("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB, cfg *config.Config) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Message{},
		&models.Follow{},
		&models.Like{},
		&models.DirectMessage{},
	)
	if err != nil {
		logger.Log.Fatalf("Failed to auto migrate models: %v", err)
	}
	logger.Log.Info("Auto-migrations completed for all models.")

	m := metrics.InitMetrics()

	// Always accessible
	e.GET("/health", handlers.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// --- Initialize Repositories ---
	hasher := auth.NewPasswordHasher(cfg.BcryptCost)
	userRepo := repositories.NewPostgresUserRepository(db, hasher)
	followRepo := repositories.NewPostgresFollowRepository(db)
	messageRepo := repositories.NewPostgresMessageRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	dmRepo := repositories.NewPostgresDirectMessageRepository(db)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, cfg.JWTSecret, m)
	authHandler.RegisterAuthRoutes(authGroup)
	logger.Log.Info("Auth routes configured.")

	// --- Feed: optional auth so anonymous callers get the landing payload ---
	feedGroup := e.Group("/api/v1")
	feedGroup.Use(middleware.OptionalJWTAuthMiddleware(cfg.JWTSecret))
	feedHandler := handlers.NewFeedHandler(messageRepo, userRepo)
	feedHandler.RegisterFeedRoutes(feedGroup)
	logger.Log.Info("Feed routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware(cfg.JWTSecret))

	userHandler := handlers.NewUserHandler(userRepo, followRepo, likeRepo)
	userHandler.RegisterUserRoutes(api)

	followHandler := handlers.NewFollowHandler(followRepo, userRepo, m)
	followHandler.RegisterFollowRoutes(api)

	messageHandler := handlers.NewMessageHandler(messageRepo, userRepo, m)
	messageHandler.RegisterMessageRoutes(api)

	likeHandler := handlers.NewLikeHandler(likeRepo, userRepo, m)
	likeHandler.RegisterLikeRoutes(api)

	dmHandler := handlers.NewDirectMessageHandler(dmRepo, userRepo, m)
	dmHandler.RegisterDirectMessageRoutes(api)

	adminHandler := handlers.NewAdminHandler(userRepo, messageRepo)
	adminHandler.RegisterAdminRoutes(api)

	logger.Log.Info("All routes configured.")
}
