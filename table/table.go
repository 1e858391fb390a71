// Package table provides an immutable 2-D numeric container with labeled
// axes: rows name alternatives, columns name criteria. Every derived table is
// a fresh value; no operation mutates its receiver.
package table

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Table is a dense float64 matrix with unique row and column labels.
type Table struct {
	rowLabels []string
	colLabels []string
	data      *mat.Dense
}

// New builds a Table from row-major values. It rejects empty axes, duplicate
// labels, ragged rows, and non-finite cells.
func New(rowLabels, colLabels []string, values [][]float64) (*Table, error) {
	if len(rowLabels) == 0 || len(colLabels) == 0 {
		return nil, fmt.Errorf("table: need at least one row and one column")
	}
	if err := checkUnique("row", rowLabels); err != nil {
		return nil, err
	}
	if err := checkUnique("column", colLabels); err != nil {
		return nil, err
	}
	if len(values) != len(rowLabels) {
		return nil, fmt.Errorf("table: %d value rows for %d row labels", len(values), len(rowLabels))
	}

	data := mat.NewDense(len(rowLabels), len(colLabels), nil)
	for i, row := range values {
		if len(row) != len(colLabels) {
			return nil, fmt.Errorf("table: row %q has %d values, want %d", rowLabels[i], len(row), len(colLabels))
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("table: cell (%q, %q) is not finite", rowLabels[i], colLabels[j])
			}
			data.Set(i, j, v)
		}
	}

	return &Table{
		rowLabels: copyLabels(rowLabels),
		colLabels: copyLabels(colLabels),
		data:      data,
	}, nil
}

// NumRows returns the number of rows (alternatives).
func (t *Table) NumRows() int { return len(t.rowLabels) }

// NumCols returns the number of columns (criteria).
func (t *Table) NumCols() int { return len(t.colLabels) }

// RowLabels returns a copy of the row labels in order.
func (t *Table) RowLabels() []string { return copyLabels(t.rowLabels) }

// ColLabels returns a copy of the column labels in order.
func (t *Table) ColLabels() []string { return copyLabels(t.colLabels) }

// At returns the value at row i, column j.
func (t *Table) At(i, j int) float64 { return t.data.At(i, j) }

// ColumnIndex returns the position of the named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for j, label := range t.colLabels {
		if label == name {
			return j, true
		}
	}
	return 0, false
}

// Column returns a copy of column j's values in row order.
func (t *Table) Column(j int) []float64 {
	return mat.Col(nil, j, t.data)
}

// ColumnSum returns the sum of column j.
func (t *Table) ColumnSum(j int) float64 {
	return floats.Sum(t.Column(j))
}

// RowSums returns the sum of each row in row order.
func (t *Table) RowSums() []float64 {
	sums := make([]float64, t.NumRows())
	for i := range sums {
		sums[i] = floats.Sum(t.data.RawRowView(i))
	}
	return sums
}

// ApplyColumn returns a new table with f applied element-wise to column j.
// All other cells and both label axes are unchanged.
func (t *Table) ApplyColumn(j int, f func(float64) float64) *Table {
	data := mat.DenseCopyOf(t.data)
	for i := 0; i < t.NumRows(); i++ {
		data.Set(i, j, f(data.At(i, j)))
	}
	return &Table{rowLabels: t.rowLabels, colLabels: t.colLabels, data: data}
}

// ScaleColumns returns a new table with each column multiplied by its factor.
func (t *Table) ScaleColumns(factors []float64) (*Table, error) {
	if len(factors) != t.NumCols() {
		return nil, fmt.Errorf("table: %d scale factors for %d columns", len(factors), t.NumCols())
	}
	data := mat.DenseCopyOf(t.data)
	for j, factor := range factors {
		for i := 0; i < t.NumRows(); i++ {
			data.Set(i, j, data.At(i, j)*factor)
		}
	}
	return &Table{rowLabels: t.rowLabels, colLabels: t.colLabels, data: data}, nil
}

// Matrix returns the underlying values as a gonum matrix for read-only use.
func (t *Table) Matrix() mat.Matrix { return t.data }

func checkUnique(axis string, labels []string) error {
	seen := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		if _, ok := seen[label]; ok {
			return fmt.Errorf("table: duplicate %s label %q", axis, label)
		}
		seen[label] = struct{}{}
	}
	return nil
}

func copyLabels(labels []string) []string {
	out := make([]string, len(labels))
	copy(out, labels)
	return out
}
