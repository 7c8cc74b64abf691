package predict

import (
	"context"
	"fmt"
	"time"

	"heart-risk-api/internal/diet"
	"heart-risk-api/internal/patient"
	"heart-risk-api/internal/risk"
	"heart-risk-api/internal/shared/metrics"
	"heart-risk-api/internal/shared/telemetry"
)

// Classifier scores a patient record.
type Classifier interface {
	Classify(patient.Record) risk.Assessment
}

// Recommender builds a diet plan from a risk flag and patient record.
type Recommender interface {
	Recommend(atRisk bool, rec patient.Record) diet.Plan
}

// Result is the outcome of one prediction.
type Result struct {
	Record     patient.Record
	Assessment risk.Assessment
	Plan       diet.Plan
	Warnings   []patient.Warning
}

// InputError carries the coercion warnings that caused a strict-mode rejection.
type InputError struct {
	Warnings []patient.Warning
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%d field(s) failed coercion", len(e.Warnings))
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// Service composes coercion, classification and recommendation.
type Service struct {
	Classifier  Classifier
	Recommender Recommender
	// Strict rejects requests with fields that failed coercion instead of
	// classifying them with invalid readings.
	Strict bool
	Now    func() time.Time
}

// Predict coerces raw fields and runs the classifier and recommender.
func (s *Service) Predict(ctx context.Context, raw patient.Raw) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, fmt.Errorf("predict: %w", err)
	}
	now := s.Now
	if now == nil {
		now = time.Now
	}
	start := now()

	rec, warnings := patient.Coerce(raw)
	if len(warnings) > 0 {
		metrics.IncInputCoerced()
		telemetry.Warn("predict.input_coerced", map[string]any{
			"fields": warningFields(warnings),
			"strict": s.Strict,
		})
		if s.Strict {
			return Result{}, &InputError{Warnings: warnings}
		}
	}

	assessment := s.Classifier.Classify(rec)
	plan := s.Recommender.Recommend(assessment.AtRisk, rec)

	metrics.IncPrediction(assessment.AtRisk)
	metrics.ObservePredictionDurationMs(float64(now().Sub(start).Microseconds()) / 1000.0)

	return Result{
		Record:     rec,
		Assessment: assessment,
		Plan:       plan,
		Warnings:   warnings,
	}, nil
}

func warningFields(warnings []patient.Warning) []string {
	out := make([]string, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, w.Field)
	}
	return out
}
