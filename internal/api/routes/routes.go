package routes

import (
	"tether-backend/internal/api/handlers"
	"tether-backend/internal/api/middleware"
	"tether-backend/internal/auth"
	"tether-backend/internal/config"
	"tether-backend/internal/repository"
	"tether-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// provisionerAdapter adapts service.UserService to auth.UserProvisioner
type provisionerAdapter struct {
	users *service.UserService
}

func (a *provisionerAdapter) Provision(email, name, picture string) (uuid.UUID, string, string, error) {
	user, err := a.users.GetOrCreateByIdentity(&service.VerifiedIdentity{
		Email:   email,
		Name:    name,
		Picture: picture,
	})
	if err != nil {
		return uuid.Nil, "", "", err
	}
	return user.ID, user.Email, user.DisplayName, nil
}

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
	teamRepo := repository.NewTeamRepository(db)
	userRepo := repository.NewUserRepository(db)
	linkRepo := repository.NewLinkRepository(db)

	// Initialize services
	userService := service.NewUserService(userRepo, validator)
	teamService := service.NewTeamService(teamRepo, userRepo, validator)
	summaryService := service.NewSummaryService(cfg)
	linkService := service.NewLinkService(linkRepo, teamRepo, userRepo, summaryService, validator)
	dashboardService := service.NewDashboardService(teamRepo, userRepo, linkRepo)

	// Initialize auth services
	authService := auth.NewAuthService(cfg)
	googleVerifier := auth.NewGoogleVerifier(cfg)
	authHandler := auth.NewAuthHandler(authService, googleVerifier, &provisionerAdapter{users: userService})
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	teamHandler := handlers.NewTeamHandler(teamService)
	userHandler := handlers.NewUserHandler(userService)
	linkHandler := handlers.NewLinkHandler(linkService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Auth routes
	authGroup := router.Group("/api/v1/auth")
	{
		authGroup.POST("/google", authHandler.Login)
		authGroup.GET("/google/start", authHandler.Start)
		authGroup.POST("/google/callback", authHandler.Callback)
		authGroup.POST("/refresh", authHandler.Refresh)
		authGroup.POST("/logout", authHandler.Logout)
	}

	// API v1 routes - all endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())

	// Rate limiting applies after auth so the per-user key is available
	if cfg.RateLimitEnabled() {
		limiter := middleware.NewRateLimiter(cfg)
		v1.Use(limiter.Handler())
	}

	{
		// Team routes
		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.GetAllTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
			teams.POST("/:id/members", teamHandler.AddMember)
			teams.DELETE("/:id/members/:userId", teamHandler.RemoveMember)
			teams.POST("/:id/stats", teamHandler.UpdateStats)
			teams.GET("/:id/dashboard", dashboardHandler.GetTeamDashboard)
		}

		// User routes
		users := v1.Group("/users")
		{
			users.GET("", userHandler.GetAllUsers)
			users.GET("/me", userHandler.GetCurrentUser)
			users.PUT("/me", userHandler.UpdateCurrentUser)
			users.GET("/me/dashboard", dashboardHandler.GetUserDashboard)
			users.GET("/:id", userHandler.GetUser)
		}

		// Link routes
		links := v1.Group("/links")
		{
			links.GET("", linkHandler.GetLinks)
			links.POST("", linkHandler.CreateLink)
			links.GET("/:id", linkHandler.GetLink)
			links.DELETE("/:id", linkHandler.DeleteLink)
			links.POST("/:id/start", linkHandler.StartLink)
			links.POST("/:id/complete", linkHandler.CompleteLink)
			links.POST("/:id/cancel", linkHandler.CancelLink)
			links.POST("/:id/no-show", linkHandler.MarkNoShow)
			links.POST("/:id/participants", linkHandler.AddParticipant)
			links.POST("/:id/outcomes", linkHandler.AddOutcome)
			links.PATCH("/:id/outcomes/:index", linkHandler.UpdateOutcomeStatus)
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
