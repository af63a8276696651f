package routes

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"jobconnect-backend/internal/api/handlers"
	"jobconnect-backend/internal/api/middleware"
	"jobconnect-backend/internal/auth"
	"jobconnect-backend/internal/config"
	"jobconnect-backend/internal/storage"
	"jobconnect-backend/internal/store"
	"jobconnect-backend/pkg/utils"
)

// Dependencies carries the shared services the route handlers close over.
// Optional entries (Objects, History) may be nil; the affected endpoints
// degrade instead of failing to register.
type Dependencies struct {
	Store       store.Store
	AuthClient  *auth.Client
	LLM         handlers.LLMService
	Objects     storage.ObjectStore
	History     *utils.ChatHistoryClient
	RateLimiter *middleware.RateLimiter
}

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, deps Dependencies) {
	e.HTTPErrorHandler = handlers.ErrorHandler()

	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.AllowedHosts(cfg.Server.AllowedHosts))
	e.Use(middleware.CORSConfig(cfg.CORS.AllowedOrigins))
	e.Use(middleware.RequestValidation())
	// Selective timeout: the server default for most endpoints, the long
	// LLM budget for the model-backed ones
	e.Use(middleware.SelectiveTimeoutConfig(cfg.Server.ReadTimeout, cfg.LLM.Timeout))

	jwtSecret := cfg.Auth.JWTSecret

	// Health surface
	e.GET("/", handlers.RootHandler)
	health := e.Group("/health")
	{
		health.GET("", handlers.HealthHandler)
		health.GET("/ready", handlers.ReadinessHandler(deps.Store, deps.LLM, deps.Objects))
		health.GET("/live", handlers.LivenessHandler)
	}
	e.GET("/status", handlers.StatusHandler(deps.LLM))

	// Job postings
	jobs := e.Group("/jobs")
	{
		jobs.GET("", handlers.ListJobsHandler(deps.Store))
		jobs.POST("", handlers.CreateJobHandler(deps.Store), middleware.OptionalAuth(jwtSecret))
		jobs.GET("/search", handlers.SearchJobsHandler(deps.Store))
		jobs.DELETE("/:id", handlers.DeleteJobHandler(deps.Store))
		jobs.GET("/:id/applications", handlers.ListJobApplicationsHandler(deps.Store), middleware.RequireAuth(jwtSecret))
	}
	e.GET("/stats", handlers.StatsHandler(deps.Store))

	// Applications
	applications := e.Group("/applications", middleware.RequireAuth(jwtSecret))
	{
		applications.POST("", handlers.CreateApplicationHandler(deps.Store))
		applications.GET("", handlers.ListMyApplicationsHandler(deps.Store))
		applications.PATCH("/:id/status", handlers.UpdateApplicationStatusHandler(deps.Store))
	}

	// Resumes
	resumes := e.Group("/resumes", middleware.RequireAuth(jwtSecret))
	{
		resumes.POST("/upload", handlers.UploadResumeHandler(deps.Store, deps.Objects))
		resumes.GET("", handlers.ListResumesHandler(deps.Store))
		resumes.DELETE("/:id", handlers.DeleteResumeHandler(deps.Store, deps.Objects))
	}

	// Delegated auth
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", handlers.RegisterHandler(deps.AuthClient, deps.Store))
		authGroup.POST("/signup", handlers.RegisterHandler(deps.AuthClient, deps.Store))
		authGroup.POST("/login", handlers.LoginHandler(deps.AuthClient))
		authGroup.GET("/profile", handlers.ProfileHandler(), middleware.RequireAuth(jwtSecret))
	}

	// Assistant
	llmLimited := []echo.MiddlewareFunc{}
	if deps.RateLimiter != nil {
		llmLimited = append(llmLimited, deps.RateLimiter.Middleware())
	}
	e.POST("/chat", handlers.ChatHandler(deps.LLM, deps.History), llmLimited...)
	e.GET("/chat/history/:session_id", handlers.ChatHistoryHandler(deps.History))
	e.GET("/models", handlers.ModelsHandler(deps.LLM))
	e.POST("/resume/enhance", handlers.EnhanceResumeHandler(deps.LLM), llmLimited...)
}
