package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pc-build-advisor/internal/middleware"
	"pc-build-advisor/internal/services"
)

// GeneratePaths are the routes the build generator answers on. The second
// keeps the path existing Netlify frontends post to.
var GeneratePaths = []string{"/api/generate", "/.netlify/functions/generate"}

// RouterConfig holds configuration for setting up routes
type RouterConfig struct {
	BuildService    services.BuildService
	Logger          *logrus.Logger
	CORSAllowOrigin string
	Version         string
}

// NewRouter builds a gin engine with middleware and all routes
func NewRouter(config *RouterConfig) *gin.Engine {
	if config.Logger == nil {
		config.Logger = logrus.StandardLogger()
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(config.Logger))
	router.Use(middleware.StructuredLogger(config.Logger))
	router.Use(middleware.PerformanceMonitor(config.Logger, 0))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.CORS(config.CORSAllowOrigin))

	SetupRoutes(router, config)
	return router
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	generateHandler := NewGenerateHandler(config.BuildService, config.Logger)

	version := config.Version
	if version == "" {
		version = "1.0.0"
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"service":   "pc-build-advisor",
			"timestamp": time.Now().UTC(),
			"version":   version,
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Every method is routed so the handler itself answers 405
	for _, path := range GeneratePaths {
		router.Any(path, generateHandler.Generate)
	}
}
