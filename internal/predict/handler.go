package predict

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"heart-risk-api/internal/patient"
	"heart-risk-api/internal/shared/metrics"
	"heart-risk-api/internal/shared/server/respond"
	"heart-risk-api/internal/shared/telemetry"
)

const maxBodyBytes = 1 << 20

var errInvalidBody = errors.New("invalid request body")

// Handler wires HTTP handlers to the prediction service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches prediction routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/predict", h.predict)
	rg.POST("/generate-report", h.generateReport)
}

// predict godoc
// @Summary      Predict heart-disease risk
// @Description  Scores patient attributes with a rule-based classifier and returns diet guidance.
// @Tags         Prediction
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        request body predict.PredictRequest true "Patient attributes"
// @Success      200 {object} predict.PredictResponse
// @Failure      400 {object} respond.ErrorResponse "Undecodable body or rejected input"
// @Failure      429 {object} object{error=string,retryAfterMs=int}
// @Failure      500 {object} respond.ErrorResponse
// @Router       /api/predict [post]
func (h *Handler) predict(c *gin.Context) {
	var req PredictRequest
	if err := bindRequest(c, &req); err != nil {
		respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid request body", nil)
		return
	}

	result, err := h.run(c.Request.Context(), req.raw())
	if err != nil {
		var inputErr *InputError
		switch {
		case errors.As(err, &inputErr):
			c.Set("inputWarnings", len(inputErr.Warnings))
			respond.Error(c, http.StatusBadRequest, ErrorCodeValidation, "invalid input", inputErr.Warnings)
		default:
			metrics.IncPredictionFailed()
			telemetry.Error("predict.failed", map[string]any{
				"request_id": c.GetString("requestId"),
				"error":      err,
			})
			respond.Error(c, http.StatusInternalServerError, ErrorCodeInternal, "Failed to process prediction", nil)
		}
		return
	}

	c.Set("atRisk", result.Assessment.AtRisk)
	c.Set("inputWarnings", len(result.Warnings))
	respond.OK(c, toPredictResponse(result))
}

// run calls the service and converts a panic into an error so the caller gets
// the prediction failure body rather than the generic recovery response.
func (h *Handler) run(ctx context.Context, raw patient.Raw) (res Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			telemetry.Error("predict.panic", map[string]any{
				"panic": fmt.Sprint(rec),
				"stack": string(debug.Stack()),
			})
			metrics.IncPanic()
			err = fmt.Errorf("predict: panic: %v", rec)
		}
	}()
	return h.Svc.Predict(ctx, raw)
}

// generateReport godoc
// @Summary      Generate report (stub)
// @Description  Placeholder for report generation. Always succeeds without producing a document.
// @Tags         Prediction
// @Produce      json
// @Success      200 {object} predict.ReportResponse
// @Router       /api/generate-report [post]
func (h *Handler) generateReport(c *gin.Context) {
	respond.OK(c, ReportResponse{
		Success: true,
		Message: "Report would be generated here in a full implementation",
	})
}

// bindRequest decodes JSON bodies leniently and falls back to gin's form
// binding for urlencoded and multipart bodies. An empty body is accepted.
func bindRequest(c *gin.Context, out *PredictRequest) error {
	switch c.ContentType() {
	case binding.MIMEPOSTForm, binding.MIMEMultipartPOSTForm:
		if err := c.ShouldBindWith(out, binding.Form); err != nil {
			return errInvalidBody
		}
		return nil
	default:
		if c.Request.Body == nil {
			return nil
		}
		return decodeOptionalJSON(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes), out)
	}
}

func decodeOptionalJSON(body io.ReadCloser, out any) error {
	decoder := json.NewDecoder(body)
	if err := decoder.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errInvalidBody
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		return errInvalidBody
	}
	return nil
}
