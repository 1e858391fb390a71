package ahp

import (
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/decisionrank/mcdm/table"
)

const (
	scaleMin = 1.0 / 9
	scaleMax = 9.0

	// maxCriteria bounds the judgment matrix to the tabulated random index.
	maxCriteria = 15

	reciprocityTol = 1e-9

	// ConsistencyThreshold is the conventional acceptability bound for the
	// consistency ratio. Construction never enforces it; whether to reject a
	// matrix above threshold is the caller's decision.
	ConsistencyThreshold = 0.10
)

// randomIndex is Saaty's random consistency index by criterion count.
var randomIndex = map[int]float64{
	1: 0, 2: 0, 3: 0.58, 4: 0.9, 5: 1.12, 6: 1.24, 7: 1.32, 8: 1.41,
	9: 1.45, 10: 1.49, 11: 1.51, 12: 1.48, 13: 1.56, 14: 1.57, 15: 1.59,
}

// Saaty derives criterion weights from a pairwise judgment matrix using the
// mean of the column-normalized judgments (the standard eigenvector
// approximation), along with a consistency ratio measuring how far the
// judgments stray from transitivity.
type Saaty struct {
	judgment   *table.Table
	objectives ObjectiveMap
	weights    WeightVector
	lambdaMax  float64
	ci         float64
	cr         float64
}

// NewSaaty validates the judgment matrix and derives weights and consistency
// figures. The objective's minimize list is resolved against the judgment
// matrix's own criterion set. A nil logger falls back to slog.Default.
func NewSaaty(judgment *table.Table, objective Objective, logger *slog.Logger) (*Saaty, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if err := validateJudgmentShape(judgment); err != nil {
		return nil, err
	}
	n := judgment.NumCols()
	if err := validateCriterionCount(n); err != nil {
		return nil, err
	}
	if err := validateScale(judgment); err != nil {
		return nil, err
	}
	if err := validateReciprocity(judgment); err != nil {
		return nil, err
	}

	objectives, err := ResolveObjectives(judgment.ColLabels(), objective)
	if err != nil {
		return nil, err
	}

	weights := priorityVector(judgment)
	lambda := lambdaMax(judgment, weights)

	// RI is 0 for one or two criteria: reciprocity alone makes such a matrix
	// perfectly consistent, so CR is 0 rather than 0/0.
	var ci, cr float64
	if n >= 3 {
		ci = (lambda - float64(n)) / float64(n-1)
		cr = ci / randomIndex[n]
	}

	s := &Saaty{
		judgment:   judgment,
		objectives: objectives,
		weights:    weights,
		lambdaMax:  lambda,
		ci:         ci,
		cr:         cr,
	}
	logger.Debug("saaty weighting derived",
		"criteria", n,
		"weights", weights.Values(),
		"lambda_max", lambda,
		"consistency_ratio", cr,
	)
	return s, nil
}

// Weights returns the derived criterion weights.
func (s *Saaty) Weights() WeightVector { return s.weights }

// LambdaMax returns the principal eigenvalue approximation.
func (s *Saaty) LambdaMax() float64 { return s.lambdaMax }

// ConsistencyIndex returns CI = (λ_max − n) / (n − 1).
func (s *Saaty) ConsistencyIndex() float64 { return s.ci }

// ConsistencyRatio returns CR = CI / RI(n).
func (s *Saaty) ConsistencyRatio() float64 { return s.cr }

// Consistent reports whether CR is within the conventional 0.10 threshold.
func (s *Saaty) Consistent() bool { return s.cr <= ConsistencyThreshold }

// LocalPreference normalizes the decision table under this instance's
// objectives. The decision table must carry the judgment matrix's criterion
// columns in the same order.
func (s *Saaty) LocalPreference(decision *table.Table) (*table.Table, error) {
	if err := s.validateDecision(decision); err != nil {
		return nil, err
	}
	return Normalize(decision, s.objectives)
}

// GlobalPreference ranks the decision table's alternatives under this
// instance's weights.
func (s *Saaty) GlobalPreference(decision *table.Table) ([]Standing, error) {
	local, err := s.LocalPreference(decision)
	if err != nil {
		return nil, err
	}
	return Rank(local, s.weights)
}

func (s *Saaty) validateDecision(decision *table.Table) error {
	want := s.judgment.ColLabels()
	got := decision.ColLabels()
	if len(got) != len(want) {
		return fmt.Errorf("%w: decision table has %d criteria, judgment matrix has %d",
			ErrShapeMismatch, len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			return fmt.Errorf("%w: decision criterion %d is %q, judgment matrix has %q",
				ErrShapeMismatch, i, got[i], want[i])
		}
	}
	return nil
}

// --- Judgment matrix validation, one rule per function ---

func validateJudgmentShape(judgment *table.Table) error {
	if judgment.NumRows() != judgment.NumCols() {
		return fmt.Errorf("%w: judgment matrix is %dx%d, must be square",
			ErrShapeMismatch, judgment.NumRows(), judgment.NumCols())
	}
	rows, cols := judgment.RowLabels(), judgment.ColLabels()
	for i := range cols {
		if rows[i] != cols[i] {
			return fmt.Errorf("%w: judgment row %d labeled %q, column labeled %q",
				ErrShapeMismatch, i, rows[i], cols[i])
		}
	}
	return nil
}

func validateCriterionCount(n int) error {
	if n > maxCriteria {
		return fmt.Errorf("%w: %d criteria, random index table stops at %d",
			ErrTooManyCriteria, n, maxCriteria)
	}
	return nil
}

func validateScale(judgment *table.Table) error {
	labels := judgment.ColLabels()
	for i := 0; i < judgment.NumRows(); i++ {
		for j := 0; j < judgment.NumCols(); j++ {
			if v := judgment.At(i, j); v < scaleMin || v > scaleMax {
				return fmt.Errorf("%w: %g at (%q, %q), fundamental scale is [1/9, 9]",
					ErrInvalidScale, v, labels[i], labels[j])
			}
		}
	}
	return nil
}

// validateReciprocity checks value(i,j)·value(j,i) == 1 for every pair. The
// upper triangle including the diagonal covers all pairs; on the diagonal the
// check forces value(i,i) == 1 since the scale excludes negatives.
func validateReciprocity(judgment *table.Table) error {
	labels := judgment.ColLabels()
	n := judgment.NumCols()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			if math.Abs(judgment.At(i, j)*judgment.At(j, i)-1) > reciprocityTol {
				return fmt.Errorf("%w: value at (%q, %q) is not the reciprocal of (%q, %q)",
					ErrReciprocityViolation, labels[i], labels[j], labels[j], labels[i])
			}
		}
	}
	return nil
}

// priorityVector normalizes each judgment column to sum to 1 and averages
// each row of the result.
func priorityVector(judgment *table.Table) WeightVector {
	n := judgment.NumCols()
	normalized := judgment
	for j := 0; j < n; j++ {
		sum := normalized.ColumnSum(j)
		normalized = normalized.ApplyColumn(j, func(v float64) float64 { return v / sum })
	}

	values := make([]float64, n)
	for i, rowSum := range normalized.RowSums() {
		values[i] = rowSum / float64(n)
	}
	return newWeightVector(judgment.ColLabels(), values)
}

// lambdaMax multiplies the original judgment matrix by the weight vector,
// divides each row of the product by its weight, and averages the result.
func lambdaMax(judgment *table.Table, weights WeightVector) float64 {
	n := judgment.NumCols()
	w := mat.NewVecDense(n, weights.Values())

	var product mat.VecDense
	product.MulVec(judgment.Matrix(), w)

	var sum float64
	for i := 0; i < n; i++ {
		sum += product.AtVec(i) / w.AtVec(i)
	}
	return sum / float64(n)
}
