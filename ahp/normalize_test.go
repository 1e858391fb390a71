package ahp

import (
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/decisionrank/mcdm/table"
)

const tol = 1e-9

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustTable(t *testing.T, rows, cols []string, values [][]float64) *table.Table {
	t.Helper()
	tbl, err := table.New(rows, cols, values)
	if err != nil {
		t.Fatalf("table.New failed: %v", err)
	}
	return tbl
}

func mustObjectives(t *testing.T, cols []string, objective Objective) ObjectiveMap {
	t.Helper()
	m, err := ResolveObjectives(cols, objective)
	if err != nil {
		t.Fatalf("ResolveObjectives failed: %v", err)
	}
	return m
}

func TestNormalizeColumnsSumToOne(t *testing.T) {
	decision := mustTable(t,
		[]string{"A1", "A2", "A3"},
		[]string{"C1", "C2"},
		[][]float64{{3, 1}, {2, 2}, {1, 3}},
	)
	objectives := mustObjectives(t, []string{"C1", "C2"}, Minimize("C2"))

	local, err := Normalize(decision, objectives)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}

	for j := 0; j < local.NumCols(); j++ {
		if sum := local.ColumnSum(j); math.Abs(sum-1) > tol {
			t.Errorf("column %d sums to %f, want 1", j, sum)
		}
	}
}

func TestNormalizeMaximize(t *testing.T) {
	decision := mustTable(t, []string{"A1", "A2"}, []string{"C1"}, [][]float64{{3}, {1}})
	objectives := mustObjectives(t, []string{"C1"}, MaximizeAll())

	local, err := Normalize(decision, objectives)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if got := local.At(0, 0); math.Abs(got-0.75) > tol {
		t.Errorf("At(0,0) = %f, want 0.75", got)
	}
	if got := local.At(1, 0); math.Abs(got-0.25) > tol {
		t.Errorf("At(1,0) = %f, want 0.25", got)
	}
}

// A minimize criterion is reciprocal-transformed first, so the smallest raw
// value ends up with the largest preference.
func TestNormalizeMinimizeFlipsOrder(t *testing.T) {
	decision := mustTable(t, []string{"A1", "A2"}, []string{"C1"}, [][]float64{{1}, {3}})
	objectives := mustObjectives(t, []string{"C1"}, Minimize("C1"))

	local, err := Normalize(decision, objectives)
	if err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	// reciprocals 1 and 1/3 normalize to 3/4 and 1/4
	if got := local.At(0, 0); math.Abs(got-0.75) > tol {
		t.Errorf("At(0,0) = %f, want 0.75", got)
	}
	if local.At(0, 0) <= local.At(1, 0) {
		t.Error("smaller raw value should have larger preference under minimize")
	}
}

func TestNormalizeZeroInMinimizeColumn(t *testing.T) {
	decision := mustTable(t, []string{"A1", "A2"}, []string{"C1"}, [][]float64{{0}, {3}})
	objectives := mustObjectives(t, []string{"C1"}, Minimize("C1"))

	_, err := Normalize(decision, objectives)
	if !errors.Is(err, ErrInvalidCriterionValue) {
		t.Errorf("expected ErrInvalidCriterionValue, got %v", err)
	}
}

func TestNormalizeZeroSumColumn(t *testing.T) {
	decision := mustTable(t, []string{"A1", "A2"}, []string{"C1"}, [][]float64{{0}, {0}})
	objectives := mustObjectives(t, []string{"C1"}, MaximizeAll())

	_, err := Normalize(decision, objectives)
	if !errors.Is(err, ErrDegenerateCriterion) {
		t.Errorf("expected ErrDegenerateCriterion, got %v", err)
	}
}

func TestNormalizeLeavesDecisionIntact(t *testing.T) {
	decision := mustTable(t, []string{"A1", "A2"}, []string{"C1"}, [][]float64{{3}, {1}})
	objectives := mustObjectives(t, []string{"C1"}, MaximizeAll())

	if _, err := Normalize(decision, objectives); err != nil {
		t.Fatalf("Normalize failed: %v", err)
	}
	if got := decision.At(0, 0); got != 3 {
		t.Errorf("decision table mutated: At(0,0) = %f, want 3", got)
	}
}
