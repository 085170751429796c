package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/jobboard/internal/config"
	"github.com/justsurfingit/jobboard/internal/handlers"
	"github.com/justsurfingit/jobboard/internal/middleware"
)

// NewListingRouter wires the job listing service routes.
func NewListingRouter(cfg config.HTTPConfig, jobs handlers.JobStore, logger *slog.Logger) *gin.Engine {
	r := newEngine(cfg, logger)

	r.GET("/health", handlers.HealthCheck)
	r.GET("/api", handlers.APIStatus)

	api := r.Group("/api/v1")
	{
		handlers.NewJobHandler(jobs, logger).RegisterRoutes(api.Group("/jobs"))
	}
	return r
}

// NewApplyRouter wires the job application service routes.
func NewApplyRouter(cfg config.HTTPConfig, apps handlers.Applier, logger *slog.Logger) *gin.Engine {
	r := newEngine(cfg, logger)

	r.GET("/", handlers.ServiceBanner("Job Application API"))
	r.GET("/health", handlers.HealthCheck)

	protected := r.Group("/applications", middleware.GatewayIdentity(handlers.RespondError))
	handlers.NewApplicationHandler(apps, logger).RegisterRoutes(protected)
	return r
}

func newEngine(cfg config.HTTPConfig, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.AccessLog(logger))
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		if logger != nil {
			logger.Error("panic recovered", "panic", recovered)
		}
		handlers.RespondError(c, http.StatusInternalServerError, "An unexpected error occurred")
	}))

	corsCfg := cors.DefaultConfig()
	if len(cfg.AllowOrigins) == 0 || (len(cfg.AllowOrigins) == 1 && cfg.AllowOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}
	corsCfg.AllowHeaders = []string{
		"Origin", "Content-Length", "Content-Type", "Authorization",
		middleware.HeaderUserID, middleware.HeaderUserEmail, middleware.HeaderRequestID,
	}
	r.Use(cors.New(corsCfg))

	r.NoRoute(func(c *gin.Context) {
		handlers.RespondError(c, http.StatusNotFound, "Resource not found")
	})
	return r
}
