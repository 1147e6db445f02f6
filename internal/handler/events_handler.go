package handler

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thedemodev/superdesk-publisher/internal/domain"
	"github.com/thedemodev/superdesk-publisher/internal/logger"
	"github.com/thedemodev/superdesk-publisher/internal/middleware"
)

// SignalSource hands out refresh signal subscriptions.
type SignalSource interface {
	Subscribe() (<-chan domain.RefreshSignal, func())
}

// EventsHandler streams refresh signals to browsers as server-sent events.
type EventsHandler struct {
	source    SignalSource
	heartbeat time.Duration
}

// NewEventsHandler creates a new EventsHandler. A non-positive heartbeat uses DefaultHeartbeat.
func NewEventsHandler(source SignalSource, heartbeat time.Duration) *EventsHandler {
	if heartbeat <= 0 {
		heartbeat = DefaultHeartbeat
	}
	return &EventsHandler{source: source, heartbeat: heartbeat}
}

// Stream handles GET /api/v1/events
func (h *EventsHandler) Stream(c *gin.Context) {
	signals, unsubscribe := h.source.Subscribe()
	defer unsubscribe()

	// The stream outlives the server write timeout.
	_ = http.NewResponseController(c.Writer).SetWriteDeadline(time.Time{})

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	log := logger.WithRequestID(middleware.GetRequestID(c))
	log.Debug("Event stream opened")
	defer log.Debug("Event stream closed")

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case signal, ok := <-signals:
			if !ok {
				return
			}
			c.SSEvent(signal.Reason, signal)
			c.Writer.Flush()
		case <-ticker.C:
			if _, err := io.WriteString(c.Writer, ": ping\n\n"); err != nil {
				return
			}
			c.Writer.Flush()
		}
	}
}
