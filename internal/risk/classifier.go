package risk

import (
	"fmt"

	"heart-risk-api/internal/patient"
)

// Factor is one rule that contributed to the score.
type Factor struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Weight int    `json:"weight"`
}

// Assessment is the classifier output for one record.
type Assessment struct {
	AtRisk  bool     `json:"at_risk"`
	Score   int      `json:"score"`
	Cutoff  int      `json:"cutoff"`
	Factors []Factor `json:"factors"`
}

// Classifier evaluates Rules against patient records. It holds no mutable
// state and is safe for concurrent use.
type Classifier struct {
	rules Rules
}

// NewClassifier validates rules and returns a classifier using them.
func NewClassifier(rules Rules) (*Classifier, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &Classifier{rules: rules}, nil
}

// Rules returns the rule set in use.
func (c *Classifier) Rules() Rules {
	return c.rules
}

type rule struct {
	key    string
	label  string
	weight int
	fires  func(patient.Record) bool
}

func (c *Classifier) table() []rule {
	r := c.rules
	return []rule{
		{
			key:    "age",
			label:  fmt.Sprintf("Age above %d", r.AgeThreshold),
			weight: r.AgeWeight,
			fires:  func(p patient.Record) bool { return p.Age.Above(r.AgeThreshold) },
		},
		{
			key:    "sex",
			label:  "Male sex",
			weight: r.SexWeight,
			fires:  func(p patient.Record) bool { return p.Sex.Indicator() == 1 },
		},
		{
			key:    "blood_pressure",
			label:  fmt.Sprintf("Systolic blood pressure above %d mmHg", r.BPThreshold),
			weight: r.BPWeight,
			fires:  func(p patient.Record) bool { return p.BloodPressure.Above(r.BPThreshold) },
		},
		{
			key:    "cholesterol",
			label:  fmt.Sprintf("Cholesterol above %d mg/dL", r.CholThreshold),
			weight: r.CholWeight,
			fires:  func(p patient.Record) bool { return p.Cholesterol.Above(r.CholThreshold) },
		},
		{
			key:    "chest_pain",
			label:  fmt.Sprintf("Chest pain type above %d", r.ChestPainThreshold),
			weight: r.ChestPainWeight,
			fires:  func(p patient.Record) bool { return p.ChestPain.Above(r.ChestPainThreshold) },
		},
	}
}

// Classify scores the record and flags risk when the score reaches the cutoff.
// Invalid readings never fire a rule.
func (c *Classifier) Classify(p patient.Record) Assessment {
	out := Assessment{
		Cutoff:  c.rules.Cutoff,
		Factors: []Factor{},
	}
	for _, rl := range c.table() {
		if rl.weight == 0 || !rl.fires(p) {
			continue
		}
		out.Score += rl.weight
		out.Factors = append(out.Factors, Factor{Key: rl.key, Label: rl.label, Weight: rl.weight})
	}
	out.AtRisk = out.Score >= c.rules.Cutoff
	return out
}
