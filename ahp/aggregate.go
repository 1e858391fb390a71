package ahp

import (
	"fmt"
	"sort"

	"github.com/decisionrank/mcdm/table"
)

// Standing is one alternative's final position: rank 1 is the highest score.
type Standing struct {
	Alternative string  `json:"alternative"`
	Rank        int     `json:"rank"`
	Score       float64 `json:"score"`
}

// Aggregate scales each local preference column by its criterion weight.
// Weights are looked up by column label, so the two inputs need not have been
// built in the same column order.
func Aggregate(local *table.Table, weights WeightVector) (*table.Table, error) {
	if weights.Len() != local.NumCols() {
		return nil, fmt.Errorf("%w: %d weights for %d criteria", ErrShapeMismatch, weights.Len(), local.NumCols())
	}
	factors := make([]float64, local.NumCols())
	for j, name := range local.ColLabels() {
		v, ok := weights.Of(name)
		if !ok {
			return nil, fmt.Errorf("%w: no weight for criterion %q", ErrShapeMismatch, name)
		}
		factors[j] = v
	}
	return local.ScaleColumns(factors)
}

// Rank aggregates local preferences under the given weights and orders
// alternatives by descending score, assigning ranks 1..N. Exact ties keep
// the table's original row order.
func Rank(local *table.Table, weights WeightVector) ([]Standing, error) {
	aggregated, err := Aggregate(local, weights)
	if err != nil {
		return nil, err
	}

	scores := aggregated.RowSums()
	standings := make([]Standing, len(scores))
	for i, label := range aggregated.RowLabels() {
		standings[i] = Standing{Alternative: label, Score: scores[i]}
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Score > standings[j].Score
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}
	return standings, nil
}
