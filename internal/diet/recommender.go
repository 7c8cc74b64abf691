package diet

import (
	"heart-risk-api/internal/patient"
)

type input struct {
	atRisk bool
	rec    patient.Record
}

type mapper func(input) []Group

// Recommender maps a risk flag and patient record to a diet plan. It holds
// only immutable configuration and is safe for concurrent use.
type Recommender struct {
	bands   Bands
	mappers []mapper
}

// NewRecommender returns a recommender using the given bands.
func NewRecommender(bands Bands) *Recommender {
	r := &Recommender{bands: bands}
	r.mappers = []mapper{
		baseline,
		byRisk,
		r.byAge,
		r.byCholesterol,
		r.byBloodPressure,
	}
	return r
}

// Recommend builds the plan. Baseline groups are always present, so the
// result is never empty. Groups sharing a category are merged in order.
func (r *Recommender) Recommend(atRisk bool, rec patient.Record) Plan {
	in := input{atRisk: atRisk, rec: rec}
	candidates := make([]Group, 0, 8)
	for _, m := range r.mappers {
		candidates = append(candidates, m(in)...)
	}
	return Plan{Groups: merge(candidates)}
}

func baseline(input) []Group {
	return []Group{
		group(CategoryRecommendedFoods, recommendedFoods),
		group(CategoryHydration, hydration),
	}
}

func byRisk(in input) []Group {
	if in.atRisk {
		return []Group{
			group(CategoryFoodsToLimit, foodsToLimit),
			group(CategoryHeartHealthy, heartHealthy),
		}
	}
	return []Group{group(CategoryMaintenance, maintenance)}
}

func (r *Recommender) byAge(in input) []Group {
	if !in.rec.Age.Above(r.bands.Age) {
		return nil
	}
	return []Group{group(CategoryAgeSpecific, ageSpecific)}
}

func (r *Recommender) byCholesterol(in input) []Group {
	if !in.rec.Cholesterol.Above(r.bands.Cholesterol) {
		return nil
	}
	return []Group{group(CategoryCholesterol, cholesterolManagement)}
}

func (r *Recommender) byBloodPressure(in input) []Group {
	if !in.rec.BloodPressure.Above(r.bands.BP) {
		return nil
	}
	return []Group{group(CategoryBloodPressure, bloodPressureControl)}
}

func merge(groups []Group) []Group {
	index := make(map[string]int, len(groups))
	out := make([]Group, 0, len(groups))
	for _, g := range groups {
		if i, ok := index[g.Category]; ok {
			out[i].Items = append(out[i].Items, g.Items...)
			continue
		}
		index[g.Category] = len(out)
		out = append(out, g)
	}
	return out
}
