package bootstrap

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"heart-risk-api/internal/diet"
	"heart-risk-api/internal/predict"
	"heart-risk-api/internal/risk"
	"heart-risk-api/internal/services/health"
	"heart-risk-api/internal/shared/config"
	"heart-risk-api/internal/shared/server"
	"heart-risk-api/internal/shared/server/middleware"
)

// ServiceName identifies this process in health checks and logs.
const ServiceName = "heart-risk-api"

// App holds shared dependencies.
type App struct {
	Config         config.Config
	Router         *gin.Engine
	Classifier     *risk.Classifier
	Recommender    *diet.Recommender
	PredictService *predict.Service
	PredictHandler *predict.Handler
	Health         *health.Service
}

// Build prepares every dependency and wires the router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	classifier, err := risk.NewClassifier(rulesFromConfig(cfg.Risk))
	if err != nil {
		return nil, fmt.Errorf("build classifier: %w", err)
	}
	recommender := diet.NewRecommender(diet.Bands{
		Age:         cfg.Diet.AgeBand,
		Cholesterol: cfg.Diet.CholBand,
		BP:          cfg.Diet.BPBand,
	})

	predictSvc := &predict.Service{
		Classifier:  classifier,
		Recommender: recommender,
		Strict:      cfg.StrictInput,
	}

	app := &App{
		Config:         cfg,
		Classifier:     classifier,
		Recommender:    recommender,
		PredictService: predictSvc,
		PredictHandler: predict.NewHandler(predictSvc),
		Health:         health.NewService(ServiceName, nil),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:      cfg,
		Registrars:  []server.RouteRegistrar{app.Health, app.PredictHandler},
		RateLimiter: middleware.NewRateLimiter(nil),
	})
	return app, nil
}

// rulesFromConfig keeps the default weights and overrides thresholds.
func rulesFromConfig(rc config.RiskConfig) risk.Rules {
	rules := risk.DefaultRules()
	rules.AgeThreshold = rc.AgeThreshold
	rules.BPThreshold = rc.BPThreshold
	rules.CholThreshold = rc.CholThreshold
	rules.ChestPainThreshold = rc.ChestPainThreshold
	rules.Cutoff = rc.Cutoff
	return rules
}
