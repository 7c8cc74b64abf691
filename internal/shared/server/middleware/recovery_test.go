package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRecoveryReturnsGeneric500(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buf := captureLogs(t)

	router := gin.New()
	router.Use(RequestID(), Recovery())
	router.POST("/panic", func(c *gin.Context) {
		panic("secret internal detail")
	})

	req := httptest.NewRequest(http.MethodPost, "/panic", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if strings.Contains(resp.Body.String(), "secret internal detail") {
		t.Fatalf("panic detail leaked to caller: %s", resp.Body.String())
	}
	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload["error"] != "Unexpected server error" || payload["code"] != "internal_error" {
		t.Fatalf("unexpected payload: %v", payload)
	}
	if !strings.Contains(buf.String(), "secret internal detail") {
		t.Fatalf("expected panic detail in server log")
	}
}
