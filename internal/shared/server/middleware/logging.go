package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"heart-risk-api/internal/shared/metrics"
	"heart-risk-api/internal/shared/telemetry"
)

// Logging emits a structured log per request and counts it by route. Handlers may attach extra
// fields through the "atRisk" and "inputWarnings" context keys.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		metrics.IncRequest(c.FullPath(), c.Writer.Status())

		atRisk, _ := c.Get("atRisk")
		inputWarnings, _ := c.Get("inputWarnings")

		telemetry.Info("request.complete", map[string]any{
			"request_id":     RequestIDFromContext(c),
			"method":         c.Request.Method,
			"path":           c.Request.URL.Path,
			"route":          c.FullPath(),
			"status":         c.Writer.Status(),
			"duration_ms":    float64(latency.Microseconds()) / 1000.0,
			"at_risk":        atRisk,
			"input_warnings": inputWarnings,
			"client_ip":      c.ClientIP(),
			"user_agent":     c.Request.UserAgent(),
		})
	}
}
