package middleware

import (
	"fmt"
	"io"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"heart-risk-api/internal/shared/metrics"
	"heart-risk-api/internal/shared/server/respond"
	"heart-risk-api/internal/shared/telemetry"
)

// Recovery turns a panic into a generic 500. The panic value and stack go to
// the structured log only. Broken client connections are left to gin.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, rec any) {
		telemetry.Error("panic", map[string]any{
			"request_id": RequestIDFromContext(c),
			"error":      fmt.Sprint(rec),
			"stack":      string(debug.Stack()),
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
		})
		metrics.IncPanic()
		respond.Error(c, http.StatusInternalServerError, "internal_error", "Unexpected server error", nil)
	})
}
