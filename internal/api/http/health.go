package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/laxmibeekeeping/multiservice-backend/internal/registry"
)

type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
	Version   string           `json:"version"`
	Services  []ServiceSummary `json:"services"`
}

type ServiceSummary struct {
	Name   string         `json:"name"`
	Prefix string         `json:"prefix"`
	Detail map[string]any `json:"detail"`
}

// HealthHandler serves the aggregate health route. It reports one entry per
// successfully mounted service; a service that failed to mount is simply
// absent.
type HealthHandler struct {
	version string
	mounted []registry.Mounted
}

func NewHealthHandler(version string, mounted []registry.Mounted) *HealthHandler {
	return &HealthHandler{
		version: version,
		mounted: mounted,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	services := make([]ServiceSummary, 0, len(h.mounted))
	for _, m := range h.mounted {
		services = append(services, ServiceSummary{
			Name:   m.Name,
			Prefix: m.Prefix,
			Detail: m.Service.Health(),
		})
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   h.version,
		Services:  services,
	})
}

func (h *HealthHandler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Hello, World!"})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/", h.Welcome)
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
