package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rickgao/skyblock-ah/internal/notify"
)

// Config holds route layer settings.
type Config struct {
	StaticDir     string // Served for unmatched paths when set
	DegradedAfter int    // Consecutive refresh failures before /health reports degraded
	Stream        StreamConfig
}

// SetupRouter configures all Gin routes for the application.
func SetupRouter(cfg Config, src IndexSource, hub *notify.Hub, logger *slog.Logger) *gin.Engine {
	if logger == nil {
		logger = slog.Default()
	}

	router := gin.New()

	router.Use(RecoveryMiddleware(logger))
	router.Use(RequestIDMiddleware)
	router.Use(RequestLoggerMiddleware(logger))

	h := NewHandler(src, cfg.DegradedAfter, logger)
	stream := NewStreamHandler(hub, cfg.Stream, logger)

	router.GET("/items", h.ListItemsHTML)
	router.GET("/health", h.Health)
	router.GET("/ws", stream.Stream)

	api := router.Group("/api")
	{
		api.GET("/items", h.ListItems)
		api.GET("/items/:name", h.GetItem)
	}

	if cfg.StaticDir != "" {
		router.NoRoute(gin.WrapH(http.FileServer(http.Dir(cfg.StaticDir))))
	} else {
		router.NoRoute(h.NotFound)
	}

	return router
}
