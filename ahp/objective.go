// Package ahp implements two multicriteria decision-making methods of the
// Analytic Hierarchy Process family: classical pairwise-comparison AHP
// (Saaty) and the pairwise-free Gaussian variant weighted by statistical
// dispersion. Both derive one weight per criterion and rank alternatives by
// their weighted sum of local preferences.
package ahp

import "fmt"

// Goal is the optimization direction of a single criterion.
type Goal string

const (
	// GoalMaximize means larger values are better.
	GoalMaximize Goal = "maximize"
	// GoalMinimize means smaller values are better.
	GoalMinimize Goal = "minimize"
)

type objectiveKind int

const (
	objectiveInvalid objectiveKind = iota
	objectiveMaximizeAll
	objectiveMinimizeList
)

// Objective states which criteria to minimize. Build one with MaximizeAll or
// Minimize; the zero value is invalid and fails resolution.
type Objective struct {
	kind     objectiveKind
	minimize []string
}

// MaximizeAll returns the objective that maximizes every criterion.
func MaximizeAll() Objective {
	return Objective{kind: objectiveMaximizeAll}
}

// Minimize returns the objective that minimizes the named criteria and
// maximizes all others.
func Minimize(criteria ...string) Objective {
	return Objective{
		kind:     objectiveMinimizeList,
		minimize: append([]string(nil), criteria...),
	}
}

// ObjectiveMap assigns a Goal to every criterion of a table. Immutable after
// resolution.
type ObjectiveMap struct {
	order []string
	goals map[string]Goal
}

// ResolveObjectives builds an ObjectiveMap covering every column. Unlisted
// criteria default to GoalMaximize. Fails with ErrInvalidObjective for a
// zero-value objective and ErrUnknownCriterion for a minimize entry that is
// not a column.
func ResolveObjectives(columns []string, objective Objective) (ObjectiveMap, error) {
	switch objective.kind {
	case objectiveMaximizeAll, objectiveMinimizeList:
	default:
		return ObjectiveMap{}, fmt.Errorf("%w: use MaximizeAll or Minimize", ErrInvalidObjective)
	}

	goals := make(map[string]Goal, len(columns))
	for _, name := range columns {
		goals[name] = GoalMaximize
	}
	for _, name := range objective.minimize {
		if _, ok := goals[name]; !ok {
			return ObjectiveMap{}, fmt.Errorf("%w: %q is not a column of the table", ErrUnknownCriterion, name)
		}
		goals[name] = GoalMinimize
	}

	order := make([]string, len(columns))
	copy(order, columns)
	return ObjectiveMap{order: order, goals: goals}, nil
}

// Criteria returns the criterion labels in column order.
func (m ObjectiveMap) Criteria() []string {
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}

// Goal returns the direction resolved for the named criterion.
func (m ObjectiveMap) Goal(criterion string) (Goal, bool) {
	g, ok := m.goals[criterion]
	return g, ok
}
