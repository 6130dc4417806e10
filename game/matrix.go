package game

// CodeMatrix is the square grid of tokens the player reads from.
// It is immutable once built: NewCodeMatrix deep-copies its input and all
// accessors return copies, so no external aliasing can mutate the grid.
type CodeMatrix struct {
	cells [][]Token
}

// NewCodeMatrix constructs a CodeMatrix from a non-empty, square 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyMatrix if cells has no rows or no columns,
// ErrNonSquareMatrix if any row length differs from the row count.
// Complexity: O(n²) time and memory.
func NewCodeMatrix(cells [][]Token) (*CodeMatrix, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyMatrix
	}
	n := len(cells)
	for _, row := range cells {
		if len(row) != n {
			return nil, ErrNonSquareMatrix
		}
	}
	// Deep copy to prevent external mutation.
	copied := make([][]Token, n)
	for i := range cells {
		copied[i] = make([]Token, n)
		copy(copied[i], cells[i])
	}

	return &CodeMatrix{cells: copied}, nil
}

// Size returns the number of rows (== number of columns).
// Complexity: O(1).
func (m *CodeMatrix) Size() int { return len(m.cells) }

// At returns the token at coordinate c. Coordinates are not range-checked;
// callers obtain them from Size-bounded iteration.
// Complexity: O(1).
func (m *CodeMatrix) At(c Coord) Token { return m.cells[c.Row][c.Col] }

// Row returns a copy of row i.
// Complexity: O(n).
func (m *CodeMatrix) Row(i int) []Token {
	out := make([]Token, len(m.cells[i]))
	copy(out, m.cells[i])

	return out
}

// Col returns a copy of column i.
// Complexity: O(n).
func (m *CodeMatrix) Col(i int) []Token {
	out := make([]Token, len(m.cells))
	for r := range m.cells {
		out[r] = m.cells[r][i]
	}

	return out
}
