// Package api exposes the pipeline operations over HTTP.
package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"contentiq/cache"
	"contentiq/pipeline"
)

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(orch *pipeline.Orchestrator, c *cache.Cache, version string, logger *slog.Logger) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; request logging happens in handlers
	r.Use(gin.Recovery())

	ctrl := &Controller{orch: orch, logger: logger}
	RegisterOperationRoutes(r, ctrl)
	RegisterHealthRoutes(r, c, version)
	return r
}
