package predict

import (
	"io"
	"testing"

	"github.com/gin-gonic/gin"

	"heart-risk-api/internal/diet"
	"heart-risk-api/internal/risk"
	"heart-risk-api/internal/shared/telemetry"
)

func newTestService(t *testing.T, strict bool) *Service {
	t.Helper()
	classifier, err := risk.NewClassifier(risk.DefaultRules())
	if err != nil {
		t.Fatalf("new classifier: %v", err)
	}
	return &Service{
		Classifier:  classifier,
		Recommender: diet.NewRecommender(diet.DefaultBands()),
		Strict:      strict,
	}
}

func newTestRouter(t *testing.T, svc *Service, mw ...gin.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	telemetry.SetOutput(io.Discard)
	t.Cleanup(func() { telemetry.SetOutput(nil) })

	r := gin.New()
	r.Use(mw...)
	NewHandler(svc).RegisterRoutes(r.Group("/api"))
	return r
}

func contains(items []string, want string) bool {
	for _, item := range items {
		if item == want {
			return true
		}
	}
	return false
}
