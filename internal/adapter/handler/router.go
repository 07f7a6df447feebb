package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/meeting-recap/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	transcriptHandler *Transcript
	gatherer          prometheus.Gatherer
	startedAt         time.Time
}

// NewRouter creates a new router with all handlers.
// A nil gatherer disables the metrics endpoint.
func NewRouter(cfg *config.Config, transcriptHandler *Transcript, gatherer prometheus.Gatherer) *Router {
	return &Router{
		cfg:               cfg,
		transcriptHandler: transcriptHandler,
		gatherer:          gatherer,
		startedAt:         time.Now(),
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	if rt.gatherer != nil && rt.cfg.Metrics.Enabled {
		e.GET(rt.cfg.Metrics.Path, echo.WrapHandler(promhttp.HandlerFor(rt.gatherer, promhttp.HandlerOpts{})))
	}

	// Swagger UI
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupTranscriptRoutes(v1)
}

// setupTranscriptRoutes configures transcript and meeting record routes
func (rt *Router) setupTranscriptRoutes(g *echo.Group) {
	transcripts := g.Group("/transcripts")

	if rt.transcriptHandler == nil {
		transcripts.Any("*", rt.notImplemented)
		return
	}

	transcripts.POST("", rt.transcriptHandler.Process)
	transcripts.POST("/extract", rt.transcriptHandler.Extract)
	transcripts.GET("/:id", rt.transcriptHandler.Get)
	transcripts.DELETE("/:id", rt.transcriptHandler.Delete)
	transcripts.GET("/:id/export", rt.transcriptHandler.Export)
	transcripts.GET("/:id/email", rt.transcriptHandler.Email)
}

// notImplemented returns 501 Not Implemented response
func (rt *Router) notImplemented(c echo.Context) error {
	return c.JSON(http.StatusNotImplemented, map[string]interface{}{
		"error":   "This endpoint is not yet implemented",
		"path":    c.Request().URL.Path,
		"method":  c.Request().Method,
		"message": "Please initialize the required handler in main.go",
	})
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
		"store":       rt.cfg.Store.Type,
		"uptime":      time.Since(rt.startedAt).Round(time.Second).String(),
	})
}
