package ahp

import (
	"fmt"

	"github.com/decisionrank/mcdm/table"
)

// Normalize converts a decision table into a dimensionless local preference
// table: each column is divided by its sum, so every column sums to 1. A
// minimize criterion is first replaced element-wise by its reciprocal, the
// standard algebraic trick that lets "smaller is better" criteria mix
// additively with maximize criteria.
func Normalize(decision *table.Table, objectives ObjectiveMap) (*table.Table, error) {
	local := decision
	rows := decision.RowLabels()

	for j, name := range decision.ColLabels() {
		goal, ok := objectives.Goal(name)
		if !ok {
			return nil, fmt.Errorf("%w: no objective resolved for criterion %q", ErrUnknownCriterion, name)
		}

		if goal == GoalMinimize {
			for i, v := range local.Column(j) {
				if v == 0 {
					return nil, fmt.Errorf("%w: criterion %q is zero at alternative %q, reciprocal undefined",
						ErrInvalidCriterionValue, name, rows[i])
				}
			}
			local = local.ApplyColumn(j, func(v float64) float64 { return 1 / v })
		}

		sum := local.ColumnSum(j)
		if sum == 0 {
			return nil, fmt.Errorf("%w: criterion %q sums to zero", ErrDegenerateCriterion, name)
		}
		local = local.ApplyColumn(j, func(v float64) float64 { return v / sum })
	}

	return local, nil
}
