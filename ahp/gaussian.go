package ahp

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/decisionrank/mcdm/table"
)

// Gaussian derives criterion weights from the decision table itself, with no
// pairwise judgments: each criterion's weight is its coefficient of variation
// (sample standard deviation over mean of the local preferences), normalized
// so all weights sum to 1. Criteria that spread the alternatives apart weigh
// more than criteria on which they are nearly tied.
type Gaussian struct {
	decision   *table.Table
	objectives ObjectiveMap
	local      *table.Table
	factors    []float64
	weights    WeightVector
}

// NewGaussian resolves objectives against the decision table's columns,
// normalizes it, and derives the dispersion weights. A nil logger falls back
// to slog.Default.
func NewGaussian(decision *table.Table, objective Objective, logger *slog.Logger) (*Gaussian, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if decision.NumRows() < 2 {
		return nil, fmt.Errorf("%w: sample standard deviation needs at least two alternatives",
			ErrDegenerateCriterion)
	}

	objectives, err := ResolveObjectives(decision.ColLabels(), objective)
	if err != nil {
		return nil, err
	}
	local, err := Normalize(decision, objectives)
	if err != nil {
		return nil, err
	}

	cols := local.ColLabels()
	factors := make([]float64, len(cols))
	for j, name := range cols {
		column := local.Column(j)
		mean := stat.Mean(column, nil)
		if mean == 0 {
			return nil, fmt.Errorf("%w: criterion %q has zero mean preference", ErrDegenerateCriterion, name)
		}
		factors[j] = stat.StdDev(column, nil) / mean
	}

	total := floats.Sum(factors)
	if total == 0 {
		return nil, fmt.Errorf("%w: no criterion shows dispersion, weights undefined", ErrDegenerateCriterion)
	}
	values := make([]float64, len(factors))
	for j, f := range factors {
		values[j] = f / total
	}
	weights := newWeightVector(cols, values)

	logger.Debug("gaussian weighting derived",
		"criteria", len(cols),
		"gaussian_factors", factors,
		"weights", values,
	)
	return &Gaussian{
		decision:   decision,
		objectives: objectives,
		local:      local,
		factors:    factors,
		weights:    weights,
	}, nil
}

// Decision returns the decision table fixed at construction.
func (g *Gaussian) Decision() *table.Table { return g.decision }

// Factors returns the per-criterion coefficients of variation in column order.
func (g *Gaussian) Factors() []float64 {
	out := make([]float64, len(g.factors))
	copy(out, g.factors)
	return out
}

// Weights returns the normalized dispersion weights.
func (g *Gaussian) Weights() WeightVector { return g.weights }

// LocalPreference returns the normalized decision table.
func (g *Gaussian) LocalPreference() *table.Table { return g.local }

// GlobalPreference ranks the alternatives of the decision table fixed at
// construction; it takes no arguments.
func (g *Gaussian) GlobalPreference() ([]Standing, error) {
	return Rank(g.local, g.weights)
}
