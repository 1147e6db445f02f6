package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thedemodev/superdesk-publisher/internal/channel"
)

// Pinger checks a backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// ChannelStatus reports the state of the push channel.
type ChannelStatus interface {
	State() channel.State
}

// HealthHandler handles health check requests.
type HealthHandler struct {
	db      Pinger
	channel ChannelStatus
}

// NewHealthHandler creates a new HealthHandler. ch may be nil when the push
// channel is disabled.
func NewHealthHandler(db Pinger, ch ChannelStatus) *HealthHandler {
	return &HealthHandler{db: db, channel: ch}
}

// HealthResponse represents the response for health check endpoints.
type HealthResponse struct {
	Status   string            `json:"status"`
	Version  string            `json:"version,omitempty"`
	Services map[string]string `json:"services,omitempty"`
}

// Health handles GET /health - comprehensive health check.
// A push channel that is not open degrades the service without failing it,
// since it reconnects on its own.
func (h *HealthHandler) Health(c *gin.Context) {
	services := map[string]string{
		"database": "healthy",
		"channel":  "disabled",
	}

	if err := h.db.Ping(c.Request.Context()); err != nil {
		services["database"] = "unhealthy"
		if h.channel != nil {
			services["channel"] = h.channel.State().String()
		}
		c.JSON(http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Services: services,
		})
		return
	}

	status := "healthy"
	if h.channel != nil {
		state := h.channel.State()
		services["channel"] = state.String()
		if state != channel.StateOpen {
			status = "degraded"
		}
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:   status,
		Version:  "1.0.0",
		Services: services,
	})
}

// Ready handles GET /ready - readiness probe for Kubernetes.
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// Live handles GET /live - liveness probe for Kubernetes.
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
