// Package patient holds the typed, request-scoped patient record and the
// coercion rules that turn loosely typed request fields into it.
package patient

import "strconv"

// Sex is the patient's sex as reported by the caller.
type Sex int

const (
	SexUnspecified Sex = iota
	SexMale
	SexFemale
	SexOther
)

func (s Sex) String() string {
	switch s {
	case SexMale:
		return "Male"
	case SexFemale:
		return "Female"
	case SexOther:
		return "Other"
	default:
		return "Unspecified"
	}
}

// Indicator is the binary sex feature used by the risk rules: 1 for male,
// 0 for everything else.
func (s Sex) Indicator() int {
	if s == SexMale {
		return 1
	}
	return 0
}

// ChestPain codes. Only the numeric value is compared by the risk rules.
const (
	ChestPainTypicalAngina  = 0
	ChestPainAtypicalAngina = 1
	ChestPainNonAnginal     = 2
	ChestPainAsymptomatic   = 3
)

// ChestPainLabel names a chest pain code, or returns "" for unknown codes.
func ChestPainLabel(code int) string {
	switch code {
	case ChestPainTypicalAngina:
		return "typical angina"
	case ChestPainAtypicalAngina:
		return "atypical angina"
	case ChestPainNonAnginal:
		return "non-anginal pain"
	case ChestPainAsymptomatic:
		return "asymptomatic"
	default:
		return ""
	}
}

// Reading is an integer measurement that may have failed to parse. An invalid
// reading never satisfies a threshold comparison.
type Reading struct {
	Value int
	Valid bool
}

// Of returns a valid reading.
func Of(v int) Reading {
	return Reading{Value: v, Valid: true}
}

// Missing is the reading produced by unparseable input.
var Missing = Reading{}

// Above reports whether the reading is valid and strictly greater than limit.
func (r Reading) Above(limit int) bool {
	return r.Valid && r.Value > limit
}

func (r Reading) String() string {
	if !r.Valid {
		return "NaN"
	}
	return strconv.Itoa(r.Value)
}

// Record is one patient's attributes for a single prediction.
type Record struct {
	Name          string
	Age           Reading
	Sex           Sex
	BloodPressure Reading
	Cholesterol   Reading
	ChestPain     Reading
}
