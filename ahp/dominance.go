package ahp

import (
	"fmt"

	"github.com/decisionrank/mcdm/table"
)

// Frontier returns the labels of the Pareto-optimal alternatives: those not
// dominated by any other row under the per-criterion goals. An alternative is
// dominated if another is at least as good on every criterion and strictly
// better on at least one. Survivors keep the table's original row order.
// O(n^2) dominance check — fine for typical alternative counts.
func Frontier(decision *table.Table, objectives ObjectiveMap) ([]string, error) {
	directions := make([]float64, decision.NumCols())
	for j, name := range decision.ColLabels() {
		goal, ok := objectives.Goal(name)
		if !ok {
			return nil, fmt.Errorf("%w: no objective resolved for criterion %q", ErrUnknownCriterion, name)
		}
		if goal == GoalMinimize {
			directions[j] = -1
		} else {
			directions[j] = 1
		}
	}

	labels := decision.RowLabels()
	var frontier []string
	for i := range labels {
		dominated := false
		for k := range labels {
			if i == k {
				continue
			}
			if dominates(decision, directions, k, i) {
				dominated = true
				break
			}
		}
		if !dominated {
			frontier = append(frontier, labels[i])
		}
	}
	return frontier, nil
}

// dominates reports whether row a dominates row b. Values are compared in
// goal direction: minimize criteria are negated so higher is always better.
func dominates(t *table.Table, directions []float64, a, b int) bool {
	strict := false
	for j := range directions {
		va := directions[j] * t.At(a, j)
		vb := directions[j] * t.At(b, j)
		if va < vb {
			return false
		}
		if va > vb {
			strict = true
		}
	}
	return strict
}
