// Package solver — selection-rule engine.
//
// The minigame alternates the "read head" between rows and columns:
// the first pick comes from the top row, the second from the column of the
// first pick, the third from the row of the second pick, and so on. No cell
// may be picked twice. LegalNextSteps encodes exactly that rule.

package solver

import "github.com/katalvlaran/breach/game"

// LegalNextSteps returns the legal next picks for the given path, in
// ascending row/column index order (the determinism contract: candidate
// order decides which solution FindFirstSolution discovers).
//
//   - Empty path: every cell of row 0.
//   - Odd path length: every unvisited cell in the column of the last pick.
//   - Even path length: every unvisited cell in the row of the last pick.
//
// Pure function of (m, path); no side effects.
// Complexity: O(n·len(path)) time, O(n) memory for the result.
func LegalNextSteps(m *game.CodeMatrix, path []Step) []Step {
	n := m.Size()
	out := make([]Step, 0, n)

	// First pick: the whole top row is available.
	if len(path) == 0 {
		for col := 0; col < n; col++ {
			out = append(out, Step{Token: m.At(game.Coord{Row: 0, Col: col}), Row: 0, Col: col})
		}

		return out
	}

	last := path[len(path)-1]
	if len(path)%2 == 1 {
		// Column-bound: stay in the column of the last pick.
		for row := 0; row < n; row++ {
			if row == last.Row || onPath(path, row, last.Col) {
				continue
			}
			out = append(out, Step{Token: m.At(game.Coord{Row: row, Col: last.Col}), Row: row, Col: last.Col})
		}
	} else {
		// Row-bound: stay in the row of the last pick.
		for col := 0; col < n; col++ {
			if col == last.Col || onPath(path, last.Row, col) {
				continue
			}
			out = append(out, Step{Token: m.At(game.Coord{Row: last.Row, Col: col}), Row: last.Row, Col: col})
		}
	}

	return out
}

// onPath reports whether coordinate (row,col) was already picked.
// Paths are bounded by the buffer size, so a linear scan beats a map here.
func onPath(path []Step, row, col int) bool {
	for _, st := range path {
		if st.Row == row && st.Col == col {
			return true
		}
	}

	return false
}
