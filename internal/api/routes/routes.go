package routes

import (
	"hackathon-portal-backend/internal/api/handlers"
	"hackathon-portal-backend/internal/api/middleware"
	"hackathon-portal-backend/internal/auth"
	"hackathon-portal-backend/internal/config"
	"hackathon-portal-backend/internal/identity"
	"hackathon-portal-backend/internal/repository"
	"hackathon-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	teamSearchRepo := repository.NewTeamSearchRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	preferencesRepo := repository.NewPreferencesRepository(db)

	// Initialize identity provider client
	identityClient := identity.NewClient(cfg)

	// Initialize services
	userService := service.NewUserService(userRepo, identityClient)
	teamService := service.NewTeamService(teamRepo, teamSearchRepo, userRepo, identityClient, validator)
	applicationService := service.NewApplicationService(applicationRepo, userRepo, validator)
	preferencesService := service.NewPreferencesService(preferencesRepo, userRepo, validator)

	// Initialize auth services
	authService := auth.NewAuthService(cfg)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService)
	teamHandler := handlers.NewTeamHandler(teamService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	preferencesHandler := handlers.NewPreferencesHandler(preferencesService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// User routes
		users := v1.Group("/users")
		{
			users.GET("/me", userHandler.GetMe)
		}

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.GET("/me", teamHandler.GetMyTeam)
			teams.POST("", teamHandler.CreateTeam)
			teams.POST("/join", teamHandler.JoinTeam)
			teams.POST("/leave", teamHandler.LeaveTeam)
			teams.GET("/discoverable", teamHandler.GetDiscoverableTeams)
			teams.PATCH("/:id", teamHandler.RenameTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
			teams.DELETE("/:id/members/:userId", teamHandler.RemoveMember)
			teams.PUT("/:id/search", teamHandler.UpdateTeamSearch)
		}

		// Application routes
		applications := v1.Group("/applications")
		{
			applications.GET("/me", applicationHandler.GetMyApplication)
			applications.PUT("/me", applicationHandler.SaveApplication)
			applications.POST("/me/submit", applicationHandler.SubmitApplication)
		}

		// Preferences routes
		preferences := v1.Group("/preferences")
		{
			preferences.GET("/me", preferencesHandler.GetMyPreferences)
			preferences.PUT("/me", preferencesHandler.SavePreferences)
		}

		// Admin routes
		admin := v1.Group("/admin")
		{
			admin.GET("/applications", applicationHandler.ListApplications)
			admin.PATCH("/applications/:userId/status", applicationHandler.DecideApplication)
			admin.POST("/identity/sync", userHandler.SyncMetadata)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
