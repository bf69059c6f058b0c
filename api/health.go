package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"contentiq/cache"
)

const readyProbeTimeout = 2 * time.Second

// RegisterHealthRoutes mounts liveness and readiness probes.
func RegisterHealthRoutes(r *gin.Engine, c *cache.Cache, version string) {
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":        "healthy",
			"version":       version,
			"cache_backend": c.Backend(),
		})
	})

	r.GET("/ready", func(ctx *gin.Context) {
		cacheState := "ok"
		if p, ok := c.Store().(interface{ Ping(context.Context) error }); ok {
			probeCtx, cancel := context.WithTimeout(ctx.Request.Context(), readyProbeTimeout)
			defer cancel()
			if err := p.Ping(probeCtx); err != nil {
				// Keep serving; the cache layer degrades on its own.
				cacheState = "unreachable"
			}
		}
		ctx.JSON(http.StatusOK, gin.H{
			"status":        "ready",
			"version":       version,
			"cache_backend": c.Backend(),
			"cache_state":   cacheState,
		})
	})
}
