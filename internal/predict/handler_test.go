package predict

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"heart-risk-api/internal/patient"
	"heart-risk-api/internal/risk"
)

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func decodePredict(t *testing.T, resp *httptest.ResponseRecorder) PredictResponse {
	t.Helper()
	var payload PredictResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return payload
}

func TestPredictHandlerAtRisk(t *testing.T) {
	r := newTestRouter(t, newTestService(t, false))
	resp := postJSON(r, "/api/predict", `{"name":"Alice","age":60,"sex":"Male","blood_pressure":160,"cholesterol":280,"chest_pain_type":2}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	payload := decodePredict(t, resp)
	if payload.Name != "Alice" || !payload.HasHeartDisease {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if payload.ResultMessage != MessageAtRisk {
		t.Fatalf("unexpected message: %q", payload.ResultMessage)
	}
	if !contains(payload.DietRecommendations, "Omega-3 rich fish (salmon, mackerel, sardines)") {
		t.Fatalf("expected heart-healthy items, got %v", payload.DietRecommendations)
	}
	if len(payload.InputWarnings) != 0 {
		t.Fatalf("expected no warnings, got %+v", payload.InputWarnings)
	}
}

func TestPredictHandlerNotAtRisk(t *testing.T) {
	r := newTestRouter(t, newTestService(t, false))
	resp := postJSON(r, "/api/predict", `{"name":"Bob","age":"25","sex":"Female","blood_pressure":"110","cholesterol":"150","chest_pain_type":"0"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	payload := decodePredict(t, resp)
	if payload.HasHeartDisease {
		t.Fatalf("expected not at risk: %+v", payload)
	}
	if payload.ResultMessage != MessageNotAtRisk {
		t.Fatalf("unexpected message: %q", payload.ResultMessage)
	}
	if !contains(payload.DietRecommendations, "Maintain a balanced diet with diverse food groups") {
		t.Fatalf("expected maintenance items, got %v", payload.DietRecommendations)
	}
	if contains(payload.DietRecommendations, "Omega-3 rich fish (salmon, mackerel, sardines)") {
		t.Fatalf("did not expect heart-healthy items, got %v", payload.DietRecommendations)
	}
}

func TestPredictHandlerMissingAgeDoesNotCrash(t *testing.T) {
	r := newTestRouter(t, newTestService(t, false))
	resp := postJSON(r, "/api/predict", `{"name":"NoAge","sex":"Male","blood_pressure":120,"cholesterol":180,"chest_pain_type":1}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	payload := decodePredict(t, resp)
	if payload.HasHeartDisease {
		t.Fatalf("expected not at risk")
	}
	if len(payload.InputWarnings) != 1 || payload.InputWarnings[0].Field != patient.FieldAge {
		t.Fatalf("expected age warning, got %+v", payload.InputWarnings)
	}
	if len(payload.DietRecommendations) == 0 {
		t.Fatalf("expected recommendations")
	}
}

func TestPredictHandlerNonNumericAge(t *testing.T) {
	r := newTestRouter(t, newTestService(t, false))
	resp := postJSON(r, "/api/predict", `{"age":"abc","sex":"Male","blood_pressure":160,"cholesterol":280,"chest_pain_type":2}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	payload := decodePredict(t, resp)
	for _, f := range payload.Assessment.Factors {
		if f.Key == "age" {
			t.Fatalf("age factor must not fire for non-numeric age")
		}
	}
	if !payload.HasHeartDisease {
		t.Fatalf("expected remaining factors to keep patient at risk")
	}
	if len(payload.InputWarnings) != 1 || payload.InputWarnings[0].Value != "abc" {
		t.Fatalf("unexpected warnings: %+v", payload.InputWarnings)
	}
}

func TestPredictHandlerStrictMode(t *testing.T) {
	r := newTestRouter(t, newTestService(t, true))
	resp := postJSON(r, "/api/predict", `{"age":"abc","sex":"Male","blood_pressure":160,"cholesterol":280,"chest_pain_type":2}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	var payload struct {
		Error   string            `json:"error"`
		Code    string            `json:"code"`
		Details []patient.Warning `json:"details"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if payload.Code != ErrorCodeValidation || len(payload.Details) != 1 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestPredictHandlerBadJSON(t *testing.T) {
	r := newTestRouter(t, newTestService(t, false))
	resp := postJSON(r, "/api/predict", `{"age":`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), `"error":"invalid request body"`) {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
}

func TestPredictHandlerEmptyBody(t *testing.T) {
	r := newTestRouter(t, newTestService(t, false))
	req := httptest.NewRequest(http.MethodPost, "/api/predict", http.NoBody)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	payload := decodePredict(t, resp)
	if payload.HasHeartDisease || len(payload.InputWarnings) != 5 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestPredictHandlerFormBody(t *testing.T) {
	r := newTestRouter(t, newTestService(t, false))
	form := url.Values{
		"name":            {"Alice"},
		"age":             {"60"},
		"sex":             {"Male"},
		"blood_pressure":  {"160"},
		"cholesterol":     {"280"},
		"chest_pain_type": {"2"},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/predict", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	payload := decodePredict(t, resp)
	if payload.Name != "Alice" || !payload.HasHeartDisease {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestPredictHandlerRecordsContextForLogging(t *testing.T) {
	var atRisk, warnings any
	r := newTestRouter(t, newTestService(t, false), func(c *gin.Context) {
		c.Next()
		atRisk, _ = c.Get("atRisk")
		warnings, _ = c.Get("inputWarnings")
	})

	postJSON(r, "/api/predict", `{"age":60,"sex":"Male","blood_pressure":160,"cholesterol":280,"chest_pain_type":2}`)
	if atRisk != true {
		t.Fatalf("expected atRisk=true in context, got %v", atRisk)
	}
	if warnings != 0 {
		t.Fatalf("expected inputWarnings=0 in context, got %v", warnings)
	}
}

type panickingClassifier struct{}

func (panickingClassifier) Classify(patient.Record) risk.Assessment {
	panic("classifier exploded")
}

func TestPredictHandlerPanicReturnsFailureBody(t *testing.T) {
	svc := newTestService(t, false)
	svc.Classifier = panickingClassifier{}
	r := newTestRouter(t, svc)

	resp := postJSON(r, "/api/predict", `{"age":60}`)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	body := resp.Body.String()
	if !strings.Contains(body, `"error":"Failed to process prediction"`) {
		t.Fatalf("unexpected body: %s", body)
	}
	if strings.Contains(body, "exploded") {
		t.Fatalf("internal detail leaked: %s", body)
	}
}

func TestGenerateReportStub(t *testing.T) {
	r := newTestRouter(t, newTestService(t, false))
	req := httptest.NewRequest(http.MethodPost, "/api/generate-report", bytes.NewReader(nil))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var payload ReportResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !payload.Success || payload.Message == "" {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestPredictHandlerOutOfRangeNumberIsInvalidReading(t *testing.T) {
	r := newTestRouter(t, newTestService(t, false))
	resp := postJSON(r, "/api/predict", `{"age":1e400,"sex":"Female","blood_pressure":-1e400,"cholesterol":150,"chest_pain_type":0}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	payload := decodePredict(t, resp)
	if payload.HasHeartDisease {
		t.Fatalf("expected not at risk: %+v", payload)
	}
	if len(payload.InputWarnings) != 2 {
		t.Fatalf("expected age and blood pressure warnings, got %+v", payload.InputWarnings)
	}
	if payload.InputWarnings[0].Field != patient.FieldAge || payload.InputWarnings[0].Value != "Infinity" {
		t.Fatalf("unexpected age warning: %+v", payload.InputWarnings[0])
	}
	if payload.InputWarnings[1].Field != patient.FieldBloodPressure || payload.InputWarnings[1].Value != "-Infinity" {
		t.Fatalf("unexpected blood pressure warning: %+v", payload.InputWarnings[1])
	}
}
