package problem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decisionrank/mcdm/ahp"
)

const exampleYAML = `
criteria:
  - name: price
    goal: minimize
  - name: capacity
alternatives:
  - name: A1
    scores: [1, 3]
  - name: A2
    scores: [2, 2]
  - name: A3
    scores: [3, 1]
judgments:
  - [1, 2]
  - [0.5, 1]
`

func TestParse(t *testing.T) {
	def, err := Parse([]byte(exampleYAML))
	require.NoError(t, err)

	require.Len(t, def.Criteria, 2)
	assert.Equal(t, "minimize", def.Criteria[0].Goal)
	assert.Equal(t, "maximize", def.Criteria[1].Goal, "empty goal defaults to maximize")

	decision, err := def.DecisionTable()
	require.NoError(t, err)
	assert.Equal(t, []string{"A1", "A2", "A3"}, decision.RowLabels())
	assert.Equal(t, []string{"price", "capacity"}, decision.ColLabels())
	assert.Equal(t, 2.0, decision.At(1, 0))

	judgment, err := def.JudgmentMatrix()
	require.NoError(t, err)
	assert.Equal(t, judgment.RowLabels(), judgment.ColLabels())
	assert.Equal(t, 0.5, judgment.At(1, 0))
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", ":\n  - ["},
		{"no criteria", "alternatives:\n  - name: A1\n    scores: [1]\n"},
		{"no alternatives", "criteria:\n  - name: C1\n"},
		{"unknown goal", "criteria:\n  - name: C1\n    goal: biggest\nalternatives:\n  - name: A1\n    scores: [1]\n"},
		{"score arity", "criteria:\n  - name: C1\n  - name: C2\nalternatives:\n  - name: A1\n    scores: [1]\n"},
		{"ragged judgments", "criteria:\n  - name: C1\n  - name: C2\nalternatives:\n  - name: A1\n    scores: [1, 2]\njudgments:\n  - [1, 2]\n  - [0.5]\n"},
		{"non-square judgments", "criteria:\n  - name: C1\n  - name: C2\nalternatives:\n  - name: A1\n    scores: [1, 2]\njudgments:\n  - [1, 2]\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestJudgmentMatrixAbsent(t *testing.T) {
	def, err := Parse([]byte("criteria:\n  - name: C1\nalternatives:\n  - name: A1\n    scores: [1]\n"))
	require.NoError(t, err)

	_, err = def.JudgmentMatrix()
	assert.Error(t, err)
}

func TestObjective(t *testing.T) {
	def, err := Parse([]byte(exampleYAML))
	require.NoError(t, err)

	decision, err := def.DecisionTable()
	require.NoError(t, err)

	// The minimize list must resolve cleanly against the decision table.
	objectives, err := ahp.ResolveObjectives(decision.ColLabels(), def.Objective())
	require.NoError(t, err)

	goal, ok := objectives.Goal("price")
	require.True(t, ok)
	assert.Equal(t, ahp.GoalMinimize, goal)
	goal, ok = objectives.Goal("capacity")
	require.True(t, ok)
	assert.Equal(t, ahp.GoalMaximize, goal)
}

// A parsed definition drives both weighting methods end to end.
func TestDefinitionToRankings(t *testing.T) {
	def, err := Parse([]byte(exampleYAML))
	require.NoError(t, err)

	decision, err := def.DecisionTable()
	require.NoError(t, err)

	g, err := ahp.NewGaussian(decision, def.Objective(), nil)
	require.NoError(t, err)
	standings, err := g.GlobalPreference()
	require.NoError(t, err)
	require.Len(t, standings, 3)
	assert.Equal(t, "A1", standings[0].Alternative, "cheapest and highest capacity wins")
	assert.Equal(t, 1, standings[0].Rank)

	judgment, err := def.JudgmentMatrix()
	require.NoError(t, err)
	s, err := ahp.NewSaaty(judgment, def.Objective(), nil)
	require.NoError(t, err)
	standings, err = s.GlobalPreference(decision)
	require.NoError(t, err)
	assert.Equal(t, "A1", standings[0].Alternative)
	assert.InDelta(t, 1.0, standings[0].Score+standings[1].Score+standings[2].Score, 1e-9,
		"scores over all alternatives sum to 1")
}
