package main

import (
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/siteguard/siteguard-api/internal/config"
	"github.com/siteguard/siteguard-api/internal/database"
	"github.com/siteguard/siteguard-api/internal/handlers"
	"github.com/siteguard/siteguard-api/internal/middleware"
	"github.com/siteguard/siteguard-api/internal/repository"
	"github.com/siteguard/siteguard-api/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure logging
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	}
	if cfg.GinMode == gin.ReleaseMode {
		log.SetFormatter(&log.JSONFormatter{})
	}

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Initialize repositories and services
	userRepo := repository.NewUserRepository(database.GetDB())
	workspaceRepo := repository.NewWorkspaceRepository(database.GetDB())

	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
	workspaceService := services.NewWorkspaceService(workspaceRepo)
	resourceService := services.NewResourceService(workspaceRepo)
	architectureService := services.NewArchitectureService(workspaceRepo)
	safetyService := services.NewSafetyService(workspaceRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	workspaceHandler := handlers.NewWorkspaceHandler(workspaceService)
	resourceHandler := handlers.NewResourceHandler(resourceService)
	architectureHandler := handlers.NewArchitectureHandler(architectureService)
	safetyHandler := handlers.NewSafetyHandler(safetyService)

	// Initialize Gin router
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "SiteGuard API is running",
		})
	})

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
	}

	// Workspace routes (protected)
	workspaces := r.Group("/workspaces")
	workspaces.Use(middleware.RequireAuth(authService))
	{
		workspaces.GET("", workspaceHandler.List)
		workspaces.POST("", workspaceHandler.Create)
		workspaces.GET("/:id", workspaceHandler.Get)
		workspaces.PUT("/:id", workspaceHandler.Update)
		workspaces.DELETE("/:id", workspaceHandler.Delete)
		workspaces.PATCH("/:id/progress", workspaceHandler.SetProgress)
		workspaces.PATCH("/:id/status", workspaceHandler.ToggleStatus)

		// Inventory
		workspaces.GET("/:id/resources", resourceHandler.List)
		workspaces.POST("/:id/resources", resourceHandler.Add)
		workspaces.PUT("/:id/resources", resourceHandler.BulkReplace)
		workspaces.GET("/:id/resources/statistics", resourceHandler.Statistics)
		workspaces.GET("/:id/resources/:resourceId", resourceHandler.Get)
		workspaces.PUT("/:id/resources/:resourceId", resourceHandler.Update)
		workspaces.DELETE("/:id/resources/:resourceId", resourceHandler.Delete)
		workspaces.PATCH("/:id/resources/:resourceId/quantity", resourceHandler.UpdateQuantity)

		// Architecture plan
		workspaces.GET("/:id/architecture", architectureHandler.Get)
		workspaces.POST("/:id/architecture", architectureHandler.Save)
		workspaces.PUT("/:id/architecture", architectureHandler.Update)
		workspaces.DELETE("/:id/architecture", architectureHandler.Delete)
		workspaces.GET("/:id/architecture/sections", architectureHandler.ListSections)
		workspaces.POST("/:id/architecture/sections", architectureHandler.AddSection)
		workspaces.GET("/:id/architecture/materials", architectureHandler.ListMaterials)
		workspaces.POST("/:id/architecture/materials", architectureHandler.AddMaterial)
		workspaces.GET("/:id/architecture/stages", architectureHandler.ListStages)
		workspaces.POST("/:id/architecture/stages", architectureHandler.AddStage)

		// Safety reports
		workspaces.GET("/:id/safety-reports", safetyHandler.List)
		workspaces.POST("/:id/safety-reports", safetyHandler.Save)
		workspaces.GET("/:id/safety-reports/:reportId", safetyHandler.Get)
	}

	// Start server
	log.Infof("Server starting on %s", cfg.ListenAddr)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
