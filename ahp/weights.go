package ahp

import (
	"fmt"
	"math"
)

// WeightVector holds one non-negative weight per criterion. Weights are keyed
// by criterion label internally; Values exposes them positionally in the
// criterion order of the table they were derived from.
type WeightVector struct {
	criteria []string
	byName   map[string]float64
}

func newWeightVector(criteria []string, values []float64) WeightVector {
	order := make([]string, len(criteria))
	copy(order, criteria)
	byName := make(map[string]float64, len(criteria))
	for i, name := range order {
		byName[name] = values[i]
	}
	return WeightVector{criteria: order, byName: byName}
}

// Len returns the number of criteria.
func (w WeightVector) Len() int { return len(w.criteria) }

// Criteria returns the criterion labels in order.
func (w WeightVector) Criteria() []string {
	out := make([]string, len(w.criteria))
	copy(out, w.criteria)
	return out
}

// Of returns the weight of the named criterion.
func (w WeightVector) Of(criterion string) (float64, bool) {
	v, ok := w.byName[criterion]
	return v, ok
}

// Values returns the weights positionally, aligned with Criteria.
func (w WeightVector) Values() []float64 {
	out := make([]float64, len(w.criteria))
	for i, name := range w.criteria {
		out[i] = w.byName[name]
	}
	return out
}

// Sum returns the total of all weights.
func (w WeightVector) Sum() float64 {
	var total float64
	for _, v := range w.byName {
		total += v
	}
	return total
}

// Validate checks that weights sum to 1.0 and none are negative.
func (w WeightVector) Validate() error {
	if math.Abs(w.Sum()-1.0) > 0.001 {
		return fmt.Errorf("weights sum to %.4f, must sum to 1.0", w.Sum())
	}
	for _, name := range w.criteria {
		if w.byName[name] < 0 {
			return fmt.Errorf("negative weight for criterion %q: %f", name, w.byName[name])
		}
	}
	return nil
}
