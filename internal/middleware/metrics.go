// Package middleware provides HTTP middleware for the Gin framework.
package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thedemodev/superdesk-publisher/internal/metrics"
)

// MetricsPath is never measured to avoid self-referential metrics.
const MetricsPath = "/metrics"

// Metrics returns a Gin middleware that records Prometheus metrics for HTTP requests.
// Routes in streamPaths are long-lived; they are counted but kept out of the
// duration histogram.
func Metrics(streamPaths ...string) gin.HandlerFunc {
	streams := make(map[string]struct{}, len(streamPaths))
	for _, p := range streamPaths {
		streams[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if c.FullPath() == MetricsPath {
			c.Next()
			return
		}

		start := time.Now()

		metrics.HTTPRequestsInFlight.Inc()
		defer metrics.HTTPRequestsInFlight.Dec()

		c.Next()

		status := strconv.Itoa(c.Writer.Status())
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(c.Request.Method, path, status).Inc()
		if _, stream := streams[path]; stream {
			return
		}
		metrics.HTTPRequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
	}
}
