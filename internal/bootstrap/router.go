package bootstrap

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/laxmibeekeeping/multiservice-backend/internal/api/http"
	"github.com/laxmibeekeeping/multiservice-backend/internal/api/http/middleware"
	"github.com/laxmibeekeeping/multiservice-backend/internal/registry"
)

// BuildRouter assembles the root engine: CORS and request-id middleware,
// the welcome and aggregate health routes, and every enabled sub-service
// mounted under its prefix. Runs once at startup; the route table never
// changes afterward.
func BuildRouter(deps registry.Deps, descriptors []registry.Descriptor) *gin.Engine {
	cfg := deps.Config

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(corsMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(middleware.RequestIDMiddleware())

	enabled := registry.ResolveEnabled(cfg.Services.Enabled, descriptors)
	mounted := registry.Mount(r, descriptors, enabled, deps)

	healthHandler := httpapi.NewHealthHandler(cfg.App.Version, mounted)
	healthHandler.RegisterRoutes(r)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found", "kind": "routing"})
	})

	return r
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}
