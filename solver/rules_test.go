package solver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/breach/game"
	"github.com/katalvlaran/breach/solver"
)

func matrix3(t *testing.T) *game.CodeMatrix {
	t.Helper()
	m, err := game.NewCodeMatrix([][]game.Token{
		{"AA", "BB", "CC"},
		{"DD", "EE", "FF"},
		{"GG", "HH", "II"},
	})
	require.NoError(t, err)

	return m
}

// TestLegalNextSteps_EmptyPath verifies that the first pick offers the
// entire top row in ascending column order.
func TestLegalNextSteps_EmptyPath(t *testing.T) {
	m := matrix3(t)

	steps := solver.LegalNextSteps(m, nil)
	assert.Equal(t, []solver.Step{
		{Token: "AA", Row: 0, Col: 0},
		{Token: "BB", Row: 0, Col: 1},
		{Token: "CC", Row: 0, Col: 2},
	}, steps)
}

// TestLegalNextSteps_ColumnBound verifies that after one pick the
// candidates come from the pick's column, excluding the pick itself.
func TestLegalNextSteps_ColumnBound(t *testing.T) {
	m := matrix3(t)
	path := []solver.Step{{Token: "BB", Row: 0, Col: 1}}

	steps := solver.LegalNextSteps(m, path)
	assert.Equal(t, []solver.Step{
		{Token: "EE", Row: 1, Col: 1},
		{Token: "HH", Row: 2, Col: 1},
	}, steps)
}

// TestLegalNextSteps_RowBound verifies the alternation back to the row of
// the last pick, with all visited cells excluded.
func TestLegalNextSteps_RowBound(t *testing.T) {
	m := matrix3(t)
	path := []solver.Step{
		{Token: "BB", Row: 0, Col: 1},
		{Token: "EE", Row: 1, Col: 1},
	}

	steps := solver.LegalNextSteps(m, path)
	assert.Equal(t, []solver.Step{
		{Token: "DD", Row: 1, Col: 0},
		{Token: "FF", Row: 1, Col: 2},
	}, steps)
}

// TestLegalNextSteps_ExcludesVisited builds a path that re-enters its
// starting row and checks the used cell is not offered again.
func TestLegalNextSteps_ExcludesVisited(t *testing.T) {
	m := matrix3(t)
	path := []solver.Step{
		{Token: "AA", Row: 0, Col: 0},
		{Token: "DD", Row: 1, Col: 0},
		{Token: "EE", Row: 1, Col: 1},
		{Token: "BB", Row: 0, Col: 1},
	}

	// Row-bound on row 0; (0,1) is the last pick and (0,0) is already
	// visited, leaving only (0,2).
	steps := solver.LegalNextSteps(m, path)
	assert.Equal(t, []solver.Step{
		{Token: "CC", Row: 0, Col: 2},
	}, steps)
}

// TestLegalNextSteps_Pure verifies the function has no side effects:
// repeated calls on the same input return identical results and leave
// the path untouched.
func TestLegalNextSteps_Pure(t *testing.T) {
	m := matrix3(t)
	path := []solver.Step{{Token: "CC", Row: 0, Col: 2}}

	first := solver.LegalNextSteps(m, path)
	second := solver.LegalNextSteps(m, path)
	assert.Equal(t, first, second)
	assert.Equal(t, []solver.Step{{Token: "CC", Row: 0, Col: 2}}, path)
}
