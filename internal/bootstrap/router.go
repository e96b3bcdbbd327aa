package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/devtrack-api/internal/constants"
	"github.com/yukikurage/devtrack-api/internal/handlers"
	"github.com/yukikurage/devtrack-api/internal/middleware"
	"github.com/yukikurage/devtrack-api/internal/repository"
	"github.com/yukikurage/devtrack-api/internal/services"
)

// RouterDeps holds everything the HTTP router needs
type RouterDeps struct {
	Repositories       repository.Repositories
	SessionStore       sessions.Store
	Location           *time.Location
	CORSAllowedOrigins []string
	AuthRateLimit      float64
	AuthRateBurst      int
	HealthChecks       []handlers.HealthCheck
}

// BuildRouter wires services, handlers and middleware into a gin engine
func BuildRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())

	if len(deps.CORSAllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     deps.CORSAllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", constants.RequestIDHeader},
			ExposeHeaders:    []string{constants.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	r.Use(sessions.Sessions(constants.SessionCookieName, deps.SessionStore))

	// Initialize services
	authService := services.NewAuthService(deps.Repositories.Users)
	logService := services.NewLogService(deps.Repositories.Logs, deps.Location)
	projectService := services.NewProjectService(deps.Repositories.Projects, deps.Location)
	skillService := services.NewSkillService(deps.Repositories.Skills)
	statsService := services.NewStatsService(deps.Repositories)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	logHandler := handlers.NewLogHandler(logService)
	projectHandler := handlers.NewProjectHandler(projectService)
	skillHandler := handlers.NewSkillHandler(skillService)
	statsHandler := handlers.NewStatsHandler(statsService)
	healthHandler := handlers.NewHealthHandler(deps.HealthChecks...)

	r.GET("/health", healthHandler.Readiness)
	r.GET("/healthz", healthHandler.Liveness)

	api := r.Group("/api")
	{
		// Auth routes (public, throttled)
		auth := api.Group("/auth")
		auth.Use(middleware.RateLimit(middleware.NewIPRateLimiter(deps.AuthRateLimit, deps.AuthRateBurst)))
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		protected := api.Group("")
		protected.Use(middleware.RequireAuth())
		{
			logs := protected.Group("/logs")
			logs.GET("", logHandler.ListLogs)
			logs.POST("", logHandler.CreateLog)
			logs.GET("/:id", logHandler.GetLog)
			logs.PUT("/:id", logHandler.ReplaceLog)
			logs.PATCH("/:id", logHandler.PatchLog)
			logs.DELETE("/:id", logHandler.DeleteLog)

			projects := protected.Group("/projects")
			projects.GET("", projectHandler.ListProjects)
			projects.POST("", projectHandler.CreateProject)
			projects.GET("/:id", projectHandler.GetProject)
			projects.PUT("/:id", projectHandler.ReplaceProject)
			projects.PATCH("/:id", projectHandler.PatchProject)
			projects.DELETE("/:id", projectHandler.DeleteProject)

			skills := protected.Group("/skills")
			skills.GET("", skillHandler.ListSkills)
			skills.POST("", skillHandler.CreateSkill)
			skills.GET("/:id", skillHandler.GetSkill)
			skills.PUT("/:id", skillHandler.ReplaceSkill)
			skills.PATCH("/:id", skillHandler.PatchSkill)
			skills.DELETE("/:id", skillHandler.DeleteSkill)

			protected.GET("/stats", statsHandler.GetStats)
		}
	}

	return r
}
