package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

var (
	predictionsTotal       atomic.Uint64
	predictionsAtRiskTotal atomic.Uint64
	predictionsFailedTotal atomic.Uint64
	inputsCoercedTotal     atomic.Uint64
	panicsTotal            atomic.Uint64

	predictionDuration = newHistogram([]float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 25, 50, 100})
	httpRequests       = newCounterVec()
)

// IncRequest counts a finished HTTP request by matched route and status code.
// Unmatched requests are recorded under route "unmatched".
func IncRequest(route string, status int) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.Inc(route, strconv.Itoa(status))
}

// IncPrediction counts a completed prediction and whether it flagged risk.
func IncPrediction(atRisk bool) {
	predictionsTotal.Add(1)
	if atRisk {
		predictionsAtRiskTotal.Add(1)
	}
}

// IncPredictionFailed increments the failed counter.
func IncPredictionFailed() {
	predictionsFailedTotal.Add(1)
}

// IncInputCoerced counts requests with at least one field that failed coercion.
func IncInputCoerced() {
	inputsCoercedTotal.Add(1)
}

// IncPanic counts requests that ended in a recovered panic.
func IncPanic() {
	panicsTotal.Add(1)
}

// ObservePredictionDurationMs records a prediction duration in milliseconds.
func ObservePredictionDurationMs(value float64) {
	if value < 0 {
		value = 0
	}
	predictionDuration.Observe(value)
}

// Handler exposes metrics in Prometheus text format.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Content-Type", "text/plain; version=0.0.4")
		c.String(http.StatusOK, Render())
	}
}

// Render renders metrics in Prometheus text format.
func Render() string {
	var buf bytes.Buffer
	writeCounter(&buf, "predictions_total", "Total predictions served", predictionsTotal.Load())
	writeCounter(&buf, "predictions_at_risk_total", "Predictions that flagged heart disease risk", predictionsAtRiskTotal.Load())
	writeCounter(&buf, "predictions_failed_total", "Predictions that failed with an internal error", predictionsFailedTotal.Load())
	writeCounter(&buf, "prediction_inputs_coerced_total", "Predictions with at least one field that failed coercion", inputsCoercedTotal.Load())
	writeCounter(&buf, "http_panics_total", "Requests that ended in a recovered panic", panicsTotal.Load())
	writeCounterVec(&buf, "http_requests_total", "HTTP requests by route and status", []string{"route", "status"}, httpRequests.Snapshot())
	writeHistogram(&buf, "prediction_duration_ms", "Prediction duration in milliseconds", predictionDuration.Snapshot())
	return buf.String()
}

type counterVec struct {
	mu     sync.Mutex
	values map[[2]string]uint64
}

type labeledValue struct {
	labels [2]string
	value  uint64
}

func newCounterVec() *counterVec {
	return &counterVec{values: make(map[[2]string]uint64)}
}

func (v *counterVec) Inc(a, b string) {
	v.mu.Lock()
	v.values[[2]string{a, b}]++
	v.mu.Unlock()
}

// Snapshot returns the series sorted by label values.
func (v *counterVec) Snapshot() []labeledValue {
	v.mu.Lock()
	out := make([]labeledValue, 0, len(v.values))
	for labels, value := range v.values {
		out = append(out, labeledValue{labels: labels, value: value})
	}
	v.mu.Unlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].labels[0] != out[j].labels[0] {
			return out[i].labels[0] < out[j].labels[0]
		}
		return out[i].labels[1] < out[j].labels[1]
	})
	return out
}

type histogram struct {
	mu      sync.Mutex
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

type histogramSnapshot struct {
	buckets []float64
	counts  []uint64
	sum     float64
	count   uint64
}

func newHistogram(buckets []float64) *histogram {
	return &histogram{
		buckets: buckets,
		counts:  make([]uint64, len(buckets)),
	}
}

// Observe records value in the first bucket whose bound covers it. Counts are
// per bucket; cumulative totals are computed when rendering.
func (h *histogram) Observe(value float64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.count++
	h.sum += value
	for i, bound := range h.buckets {
		if value <= bound {
			h.counts[i]++
			return
		}
	}
}

func (h *histogram) Snapshot() histogramSnapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return histogramSnapshot{
		buckets: append([]float64(nil), h.buckets...),
		counts:  append([]uint64(nil), h.counts...),
		sum:     h.sum,
		count:   h.count,
	}
}

func writeCounter(buf *bytes.Buffer, name, help string, value uint64) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	fmt.Fprintf(buf, "%s %d\n", name, value)
}

func writeCounterVec(buf *bytes.Buffer, name, help string, labelNames []string, series []labeledValue) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s counter\n", name)
	for _, s := range series {
		fmt.Fprintf(buf, "%s{%s=%q,%s=%q} %d\n", name, labelNames[0], s.labels[0], labelNames[1], s.labels[1], s.value)
	}
}

func writeHistogram(buf *bytes.Buffer, name, help string, snap histogramSnapshot) {
	fmt.Fprintf(buf, "# HELP %s %s\n", name, help)
	fmt.Fprintf(buf, "# TYPE %s histogram\n", name)
	var cumulative uint64
	for i, bound := range snap.buckets {
		cumulative += snap.counts[i]
		fmt.Fprintf(buf, "%s_bucket{le=\"%s\"} %d\n", name, formatFloat(bound), cumulative)
	}
	fmt.Fprintf(buf, "%s_bucket{le=\"+Inf\"} %d\n", name, snap.count)
	fmt.Fprintf(buf, "%s_sum %s\n", name, formatFloat(snap.sum))
	fmt.Fprintf(buf, "%s_count %d\n", name, snap.count)
}

func formatFloat(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return strconv.FormatFloat(value, 'f', -1, 64)
}
