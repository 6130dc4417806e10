package game_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/breach/game"
)

//----------------------------------------------------------------------------//
// CodeMatrix Tests
//----------------------------------------------------------------------------//

// TestNewCodeMatrix_Errors verifies that NewCodeMatrix rejects empty,
// ragged, and non-square inputs with the matching sentinel.
func TestNewCodeMatrix_Errors(t *testing.T) {
	cases := []struct {
		name  string
		cells [][]game.Token
		err   error
	}{
		{"EmptyRows", [][]game.Token{}, game.ErrEmptyMatrix},
		{"EmptyCols", [][]game.Token{{}}, game.ErrEmptyMatrix},
		{"Ragged", [][]game.Token{{"AA", "BB"}, {"CC"}}, game.ErrNonSquareMatrix},
		{"Rectangular", [][]game.Token{{"AA", "BB", "CC"}, {"DD", "EE", "FF"}}, game.ErrNonSquareMatrix},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := game.NewCodeMatrix(tc.cells)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

// TestCodeMatrix_Accessors checks Size, At, Row, and Col on a 2×2 grid.
func TestCodeMatrix_Accessors(t *testing.T) {
	m, err := game.NewCodeMatrix([][]game.Token{
		{"AA", "BB"},
		{"CC", "DD"},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, m.Size())
	assert.Equal(t, game.Token("AA"), m.At(game.Coord{Row: 0, Col: 0}))
	assert.Equal(t, game.Token("CC"), m.At(game.Coord{Row: 1, Col: 0}))
	assert.Equal(t, []game.Token{"CC", "DD"}, m.Row(1))
	assert.Equal(t, []game.Token{"BB", "DD"}, m.Col(1))
}

// TestCodeMatrix_Immutable verifies that neither the constructor input nor
// the accessor results alias the matrix's internal storage.
func TestCodeMatrix_Immutable(t *testing.T) {
	input := [][]game.Token{
		{"AA", "BB"},
		{"CC", "DD"},
	}
	m, err := game.NewCodeMatrix(input)
	require.NoError(t, err)

	// Mutating the input after construction must not change the matrix.
	input[0][0] = "XX"
	assert.Equal(t, game.Token("AA"), m.At(game.Coord{Row: 0, Col: 0}))

	// Mutating an accessor result must not change the matrix either.
	row := m.Row(1)
	row[0] = "YY"
	assert.Equal(t, game.Token("CC"), m.At(game.Coord{Row: 1, Col: 0}))
}

//----------------------------------------------------------------------------//
// Specification Tests
//----------------------------------------------------------------------------//

// TestSpecification_Validate walks the validation sentinels in order.
func TestSpecification_Validate(t *testing.T) {
	m, err := game.NewCodeMatrix([][]game.Token{{"AA"}})
	require.NoError(t, err)
	seq := game.UploadSequence{Tokens: []game.Token{"AA"}, Priority: 1}

	cases := []struct {
		name string
		spec game.Specification
		err  error
	}{
		{"NilMatrix", game.Specification{Sequences: []game.UploadSequence{seq}, BufferSize: 1}, game.ErrNilMatrix},
		{"ZeroBuffer", game.Specification{Matrix: m, Sequences: []game.UploadSequence{seq}}, game.ErrBufferSize},
		{"NegativeBuffer", game.Specification{Matrix: m, Sequences: []game.UploadSequence{seq}, BufferSize: -2}, game.ErrBufferSize},
		{"NoSequences", game.Specification{Matrix: m, BufferSize: 1}, game.ErrNoSequences},
		{"EmptySequence", game.Specification{Matrix: m, Sequences: []game.UploadSequence{{Priority: 1}}, BufferSize: 1}, game.ErrEmptySequence},
		{"Valid", game.Specification{Matrix: m, Sequences: []game.UploadSequence{seq}, BufferSize: 1}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.spec.Validate()
			if tc.err == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.err)
			}
		})
	}
}

// TestSpecification_OversizedSequenceIsValid confirms that a sequence longer
// than the buffer passes validation: it is permanently incomplete, not an error.
func TestSpecification_OversizedSequenceIsValid(t *testing.T) {
	m, err := game.NewCodeMatrix([][]game.Token{{"AA"}})
	require.NoError(t, err)

	spec := game.Specification{
		Matrix:     m,
		Sequences:  []game.UploadSequence{{Tokens: []game.Token{"AA", "BB", "CC"}, Priority: 1}},
		BufferSize: 1,
	}
	assert.NoError(t, spec.Validate())
}

// TestCoord_String pins the coordinate rendering used in path output.
func TestCoord_String(t *testing.T) {
	assert.Equal(t, "(3,4)", game.Coord{Row: 3, Col: 4}.String())
}
