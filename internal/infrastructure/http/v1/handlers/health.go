package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"taskdeck/internal/domain"
)

// pinger is implemented by stores backed by an external system.
type pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler provides health check endpoints.
type HealthHandler struct {
	store   domain.Store
	backend string
	version string
}

// NewHealthHandler creates a new health handler. backend names the storage
// implementation reported by the info endpoint.
func NewHealthHandler(store domain.Store, backend, version string) *HealthHandler {
	return &HealthHandler{store: store, backend: backend, version: version}
}

// Live handles liveness probe (is the process alive?).
// GET /health/live
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Ready handles readiness probe (is the service ready to accept traffic?).
// GET /health/ready
func (h *HealthHandler) Ready(c *gin.Context) {
	if p, ok := h.store.(pinger); ok {
		if err := p.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "error",
				"checks": map[string]string{
					"storage": "unhealthy: " + err.Error(),
				},
			})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"checks": map[string]string{
			"storage": "healthy",
		},
	})
}

// Info returns application information.
// GET /health/info
func (h *HealthHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"app":     "taskdeck",
		"version": h.version,
		"storage": h.backend,
	})
}
