// Package problem holds declarative decision-problem definitions: criteria
// with goals, alternatives with scores, and an optional pairwise judgment
// matrix, decodable from YAML and lowered to the table and ahp inputs.
package problem

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/decisionrank/mcdm/ahp"
	"github.com/decisionrank/mcdm/table"
)

const (
	goalMaximize = "maximize"
	goalMinimize = "minimize"
)

// Definition is a complete decision problem.
type Definition struct {
	Criteria     []Criterion   `yaml:"criteria"`
	Alternatives []Alternative `yaml:"alternatives"`
	// Judgments is the optional pairwise judgment matrix, rows and columns
	// both following the order of Criteria.
	Judgments [][]float64 `yaml:"judgments,omitempty"`
}

// Criterion names one evaluation dimension and its direction.
type Criterion struct {
	Name string `yaml:"name"`
	Goal string `yaml:"goal,omitempty"` // "maximize" (default) or "minimize"
}

// Alternative names one candidate and its score per criterion, positional in
// the order of Definition.Criteria.
type Alternative struct {
	Name   string    `yaml:"name"`
	Scores []float64 `yaml:"scores"`
}

// Parse decodes a YAML definition, applies defaults, and validates it.
func Parse(data []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse problem definition: %w", err)
	}
	for i := range def.Criteria {
		if def.Criteria[i].Goal == "" {
			def.Criteria[i].Goal = goalMaximize
		}
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Validate checks structural completeness: non-empty axes, known goals, score
// arity, and square judgments when present.
func (d *Definition) Validate() error {
	if len(d.Criteria) == 0 {
		return fmt.Errorf("problem needs at least one criterion")
	}
	if len(d.Alternatives) == 0 {
		return fmt.Errorf("problem needs at least one alternative")
	}
	for _, c := range d.Criteria {
		switch strings.ToLower(c.Goal) {
		case goalMaximize, goalMinimize, "":
		default:
			return fmt.Errorf("criterion %q: unknown goal %q", c.Name, c.Goal)
		}
	}
	for _, a := range d.Alternatives {
		if len(a.Scores) != len(d.Criteria) {
			return fmt.Errorf("alternative %q has %d scores for %d criteria",
				a.Name, len(a.Scores), len(d.Criteria))
		}
	}
	if d.Judgments != nil {
		if len(d.Judgments) != len(d.Criteria) {
			return fmt.Errorf("judgments have %d rows for %d criteria",
				len(d.Judgments), len(d.Criteria))
		}
		for i, row := range d.Judgments {
			if len(row) != len(d.Criteria) {
				return fmt.Errorf("judgments row %d has %d values for %d criteria",
					i, len(row), len(d.Criteria))
			}
		}
	}
	return nil
}

// DecisionTable builds the alternatives-by-criteria score table.
func (d *Definition) DecisionTable() (*table.Table, error) {
	rows := make([]string, len(d.Alternatives))
	values := make([][]float64, len(d.Alternatives))
	for i, a := range d.Alternatives {
		rows[i] = a.Name
		values[i] = a.Scores
	}
	return table.New(rows, d.criterionNames(), values)
}

// JudgmentMatrix builds the square pairwise judgment table. It fails when the
// definition carries no judgments.
func (d *Definition) JudgmentMatrix() (*table.Table, error) {
	if d.Judgments == nil {
		return nil, fmt.Errorf("problem definition has no judgment matrix")
	}
	names := d.criterionNames()
	return table.New(names, names, d.Judgments)
}

// Objective returns the minimize list as an ahp objective.
func (d *Definition) Objective() ahp.Objective {
	var minimize []string
	for _, c := range d.Criteria {
		if strings.ToLower(c.Goal) == goalMinimize {
			minimize = append(minimize, c.Name)
		}
	}
	if len(minimize) == 0 {
		return ahp.MaximizeAll()
	}
	return ahp.Minimize(minimize...)
}

func (d *Definition) criterionNames() []string {
	names := make([]string, len(d.Criteria))
	for i, c := range d.Criteria {
		names[i] = c.Name
	}
	return names
}
