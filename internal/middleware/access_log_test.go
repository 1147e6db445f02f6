package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thedemodev/superdesk-publisher/internal/logger"
	"github.com/thedemodev/superdesk-publisher/internal/middleware"
)

func TestAccessLog(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name  string
		code  int
		level string
	}{
		{"success is info", http.StatusOK, "INFO"},
		{"client error is warn", http.StatusConflict, "WARN"},
		{"server error is error", http.StatusBadGateway, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger.SetLogger(slog.New(slog.NewJSONHandler(&buf, nil)))

			router := gin.New()
			router.Use(middleware.RequestID(), middleware.AccessLog())
			router.GET("/test", func(c *gin.Context) {
				c.Status(tt.code)
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req.Header.Set(middleware.RequestIDHeader, "req-1")
			router.ServeHTTP(httptest.NewRecorder(), req)

			var line map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
			assert.Equal(t, tt.level, line["level"])
			assert.Equal(t, "HTTP request", line["msg"])
			assert.Equal(t, "req-1", line["request_id"])
			assert.Equal(t, "/test", line["path"])
			assert.Equal(t, float64(tt.code), line["status"])
		})
	}
}
