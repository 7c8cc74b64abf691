// Package diet selects diet recommendations from a risk flag and the
// patient's attributes.
package diet

// Group is a category of recommendations.
type Group struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// Plan is the ordered set of groups returned for one patient.
type Plan struct {
	Groups []Group `json:"groups"`
}

// Items flattens the plan into the ordered recommendation set.
func (p Plan) Items() []string {
	n := 0
	for _, g := range p.Groups {
		n += len(g.Items)
	}
	out := make([]string, 0, n)
	for _, g := range p.Groups {
		out = append(out, g.Items...)
	}
	return out
}

// Categories returns the group categories in order.
func (p Plan) Categories() []string {
	out := make([]string, 0, len(p.Groups))
	for _, g := range p.Groups {
		out = append(out, g.Category)
	}
	return out
}

// Bands are the attribute thresholds that add targeted groups. A band applies
// when the reading is strictly greater than its value.
type Bands struct {
	Age         int
	Cholesterol int
	BP          int
}

// DefaultBands returns the standard recommendation bands.
func DefaultBands() Bands {
	return Bands{Age: 50, Cholesterol: 200, BP: 130}
}
