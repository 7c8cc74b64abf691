package server

import (
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "heart-risk-api/docs"
	"heart-risk-api/internal/shared/config"
	"heart-risk-api/internal/shared/metrics"
	"heart-risk-api/internal/shared/server/middleware"
	"heart-risk-api/internal/shared/server/respond"
	"heart-risk-api/internal/shared/telemetry"
)

const rateLimitGroupPredict = "PREDICT"

// RouteRegistrar attaches a feature's routes to the API group.
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// RouterDeps lists what the router needs to serve the API.
type RouterDeps struct {
	Config      config.Config
	Registrars  []RouteRegistrar
	RateLimiter *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	cfg := deps.Config
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(rateLimitConfig(cfg, deps.RateLimiter)),
	)

	r.GET("/metrics", metrics.Handler())
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	for _, reg := range deps.Registrars {
		if reg != nil {
			reg.RegisterRoutes(api)
		}
	}

	r.NoRoute(notFound(cfg.StaticDir))
	return r
}

func rateLimitConfig(cfg config.Config, limiter *middleware.RateLimiter) middleware.RateLimitConfig {
	rules := map[string]middleware.RateLimitRule{}
	if cfg.RateLimitRPS > 0 && cfg.RateLimitBurst > 0 {
		rules[rateLimitGroupPredict] = middleware.RateLimitRule{Rate: cfg.RateLimitRPS, Burst: cfg.RateLimitBurst}
	}
	return middleware.RateLimitConfig{
		Rules:   rules,
		Limiter: limiter,
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost && c.FullPath() == "/api/predict" {
				return rateLimitGroupPredict
			}
			return ""
		},
	}
}

// notFound serves files from dir for GET and HEAD requests outside /api and
// answers everything else with a JSON 404.
func notFound(dir string) gin.HandlerFunc {
	var files http.Handler
	if dir = strings.TrimSpace(dir); dir != "" {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			telemetry.Warn("static.dir_unavailable", map[string]any{"dir": dir, "error": err})
		} else {
			files = http.FileServer(http.Dir(dir))
		}
	}
	return func(c *gin.Context) {
		method := c.Request.Method
		if files != nil && (method == http.MethodGet || method == http.MethodHead) && !strings.HasPrefix(c.Request.URL.Path, "/api/") {
			files.ServeHTTP(c.Writer, c.Request)
			return
		}
		respond.Error(c, http.StatusNotFound, "not_found", "route not found", nil)
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":5000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
