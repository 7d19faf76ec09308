package router

import (
	"github.com/findme-ke/findme-api/config"
	"github.com/findme-ke/findme-api/internal/handler"
	"github.com/findme-ke/findme-api/internal/middleware"
	"github.com/gin-gonic/gin"
)

type Router struct {
	authHandler   *handler.AuthHandler
	personHandler *handler.MissingPersonHandler
	searchHandler *handler.SearchHandler
	healthHandler *handler.HealthHandler

	jwtMw  *middleware.JWTMiddleware
	Config *config.Config
}

func NewRouter(
	auth *handler.AuthHandler,
	person *handler.MissingPersonHandler,
	search *handler.SearchHandler,
	health *handler.HealthHandler,

	jwtMw *middleware.JWTMiddleware,
	config *config.Config,
) *Router {
	return &Router{
		authHandler:   auth,
		personHandler: person,
		searchHandler: search,
		healthHandler: health,

		jwtMw:  jwtMw,
		Config: config,
	}
}

func (r *Router) SetupRoutes() *gin.Engine {
	if r.Config != nil && r.Config.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Use custom logging and recovery middleware
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORS())

	api := router.Group("/api")
	{
		api.GET("/health", r.healthHandler.HealthCheck)

		r.authRoutes(api)
		r.missingPersonRoutes(api)
		r.searchRoutes(api)
	}

	return router
}
