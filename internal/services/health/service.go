package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"heart-risk-api/internal/shared/server/respond"
)

// Status is the body returned by the health endpoint.
type Status struct {
	OK            bool   `json:"ok" example:"true"`
	Service       string `json:"service" example:"heart-risk-api"`
	UptimeSeconds int64  `json:"uptime_seconds" example:"42"`
}

// Service reports liveness and process uptime.
type Service struct {
	name    string
	started time.Time
	now     func() time.Time
}

// NewService constructs a new health service. A nil now uses time.Now.
func NewService(name string, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{name: name, started: now(), now: now}
}

// Status returns a simple health payload.
func (s *Service) Status() Status {
	return Status{
		OK:            true,
		Service:       s.name,
		UptimeSeconds: int64(s.now().Sub(s.started) / time.Second),
	}
}

// RegisterRoutes attaches the health route to the router group.
func (s *Service) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", s.health)
}

// health godoc
// @Summary      Health check
// @Tags         Health
// @Produce      json
// @Success      200 {object} health.Status
// @Router       /api/health [get]
func (s *Service) health(c *gin.Context) {
	respond.JSON(c, http.StatusOK, s.Status())
}
