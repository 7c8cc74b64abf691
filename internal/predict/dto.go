package predict

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"

	"heart-risk-api/internal/diet"
	"heart-risk-api/internal/patient"
	"heart-risk-api/internal/risk"
)

// Value is a request field that may arrive as a JSON string, number, boolean
// or null, or as a form value. It keeps the textual form for coercion.
type Value string

// UnmarshalJSON accepts any JSON scalar. Numbers keep their decimal form,
// numbers beyond float64 range become "Infinity", null becomes the empty
// string, and objects or arrays keep their raw text so that numeric coercion
// rejects them.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Value(s)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		f, err := strconv.ParseFloat(string(data), 64)
		switch {
		case math.IsInf(f, 1):
			*v = "Infinity"
		case math.IsInf(f, -1):
			*v = "-Infinity"
		case err != nil:
			*v = Value(data)
		default:
			*v = Value(strconv.FormatFloat(f, 'f', -1, 64))
		}
	default:
		*v = Value(data)
	}
	return nil
}

// UnmarshalParam implements gin's form binding hook.
func (v *Value) UnmarshalParam(param string) error {
	*v = Value(param)
	return nil
}

// PredictRequest is the body of POST /api/predict.
type PredictRequest struct {
	Name          Value `json:"name" form:"name" example:"Alice"`
	Age           Value `json:"age" form:"age" swaggertype:"string" example:"60"`
	Sex           Value `json:"sex" form:"sex" example:"Male"`
	BloodPressure Value `json:"blood_pressure" form:"blood_pressure" swaggertype:"string" example:"160"`
	Cholesterol   Value `json:"cholesterol" form:"cholesterol" swaggertype:"string" example:"280"`
	ChestPainType Value `json:"chest_pain_type" form:"chest_pain_type" swaggertype:"string" example:"2"`
}

func (r PredictRequest) raw() patient.Raw {
	return patient.Raw{
		Name:          string(r.Name),
		Age:           string(r.Age),
		Sex:           string(r.Sex),
		BloodPressure: string(r.BloodPressure),
		Cholesterol:   string(r.Cholesterol),
		ChestPainType: string(r.ChestPainType),
	}
}

// PredictResponse is the body returned by POST /api/predict.
type PredictResponse struct {
	Name                 string            `json:"name" example:"Alice"`
	HasHeartDisease      bool              `json:"has_heart_disease" example:"true"`
	ResultMessage        string            `json:"result_message" example:"You may be at risk for heart disease."`
	DietRecommendations  []string          `json:"diet_recommendations"`
	RecommendationGroups []diet.Group      `json:"recommendation_groups"`
	Assessment           risk.Assessment   `json:"assessment"`
	InputWarnings        []patient.Warning `json:"input_warnings"`
}

// ReportResponse is the body returned by POST /api/generate-report.
type ReportResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Report would be generated here in a full implementation"`
}

const (
	MessageAtRisk    = "You may be at risk for heart disease."
	MessageNotAtRisk = "You are likely not at risk for heart disease."
)

func resultMessage(atRisk bool) string {
	if atRisk {
		return MessageAtRisk
	}
	return MessageNotAtRisk
}

func toPredictResponse(res Result) PredictResponse {
	warnings := res.Warnings
	if warnings == nil {
		warnings = []patient.Warning{}
	}
	groups := res.Plan.Groups
	if groups == nil {
		groups = []diet.Group{}
	}
	return PredictResponse{
		Name:                 res.Record.Name,
		HasHeartDisease:      res.Assessment.AtRisk,
		ResultMessage:        resultMessage(res.Assessment.AtRisk),
		DietRecommendations:  res.Plan.Items(),
		RecommendationGroups: groups,
		Assessment:           res.Assessment,
		InputWarnings:        warnings,
	}
}
