// Package risk implements the rule-based heart disease risk classifier.
package risk

import (
	"errors"
	"fmt"
)

// Rules configures the additive score. Each threshold is exclusive: a rule
// fires only when its reading is strictly greater than the threshold.
type Rules struct {
	AgeThreshold       int
	BPThreshold        int
	CholThreshold      int
	ChestPainThreshold int

	AgeWeight       int
	SexWeight       int
	BPWeight        int
	CholWeight      int
	ChestPainWeight int

	// Cutoff is the minimum score that flags risk.
	Cutoff int
}

// DefaultRules returns the thresholds and weights of the heuristic used to
// label the synthetic training data.
func DefaultRules() Rules {
	return Rules{
		AgeThreshold:       50,
		BPThreshold:        140,
		CholThreshold:      240,
		ChestPainThreshold: 1,

		AgeWeight:       1,
		SexWeight:       1,
		BPWeight:        2,
		CholWeight:      2,
		ChestPainWeight: 3,

		Cutoff: 5,
	}
}

var ErrInvalidRules = errors.New("invalid risk rules")

// Validate rejects rule sets that could never or would always flag risk.
func (r Rules) Validate() error {
	weights := map[string]int{
		"age":            r.AgeWeight,
		"sex":            r.SexWeight,
		"blood_pressure": r.BPWeight,
		"cholesterol":    r.CholWeight,
		"chest_pain":     r.ChestPainWeight,
	}
	total := 0
	for _, key := range factorOrder {
		w := weights[key]
		if w < 0 {
			return fmt.Errorf("%w: %s weight must not be negative", ErrInvalidRules, key)
		}
		total += w
	}
	if r.Cutoff <= 0 {
		return fmt.Errorf("%w: cutoff must be positive", ErrInvalidRules)
	}
	if r.Cutoff > total {
		return fmt.Errorf("%w: cutoff %d exceeds maximum score %d", ErrInvalidRules, r.Cutoff, total)
	}
	return nil
}

var factorOrder = []string{"age", "sex", "blood_pressure", "cholesterol", "chest_pain"}
