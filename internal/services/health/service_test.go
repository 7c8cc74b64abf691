package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func TestStatusReportsUptime(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	svc := NewService("heart-risk-api", func() time.Time { return now })
	now = now.Add(90 * time.Second)

	got := svc.Status()
	if !got.OK || got.Service != "heart-risk-api" || got.UptimeSeconds != 90 {
		t.Fatalf("unexpected status: %+v", got)
	}
}

func TestHealthRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewService("heart-risk-api", nil).RegisterRoutes(r.Group("/api"))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var payload Status
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !payload.OK || payload.Service != "heart-risk-api" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}
