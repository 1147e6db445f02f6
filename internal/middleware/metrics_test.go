package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/thedemodev/superdesk-publisher/internal/metrics"
)

func TestMetricsMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("records HTTP request metrics", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.POST("/api/v1/sessions/:id/publish", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		path := "/api/v1/sessions/:id/publish"
		initialTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("POST", path, "200"))
		initialInFlight := testutil.ToFloat64(metrics.HTTPRequestsInFlight)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/abc/publish", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, initialTotal+1, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("POST", path, "200")),
			"counter is labelled with the route template")
		assert.Equal(t, initialInFlight, testutil.ToFloat64(metrics.HTTPRequestsInFlight),
			"in-flight should return to initial after request")
	})

	t.Run("labels unmatched routes", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())

		initialTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404"))

		req := httptest.NewRequest(http.MethodGet, "/nope", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, initialTotal+1, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "unmatched", "404")))
	})

	t.Run("skips metrics endpoint", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics())
		router.GET(MetricsPath, func(c *gin.Context) {
			c.String(http.StatusOK, "metrics data")
		})

		initialTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", MetricsPath, "200"))

		req := httptest.NewRequest(http.MethodGet, MetricsPath, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, initialTotal, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", MetricsPath, "200")))
	})

	t.Run("stream routes stay out of the duration histogram", func(t *testing.T) {
		router := gin.New()
		router.Use(Metrics("/stream-only"))
		router.GET("/stream-only", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		initialSeries := testutil.CollectAndCount(metrics.HTTPRequestDuration)
		initialTotal := testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/stream-only", "200"))

		req := httptest.NewRequest(http.MethodGet, "/stream-only", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, initialTotal+1, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues("GET", "/stream-only", "200")))
		assert.Equal(t, initialSeries, testutil.CollectAndCount(metrics.HTTPRequestDuration))
	})
}
