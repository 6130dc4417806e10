// Package game defines the immutable value types of the Breach Protocol
// puzzle: the code matrix, the upload sequences, and the full game
// specification, together with their sentinel validation errors.
package game

import (
	"errors"
	"fmt"
)

// Sentinel errors for specification validation.
var (
	// ErrNilMatrix is returned when a Specification carries a nil *CodeMatrix.
	ErrNilMatrix = errors.New("game: code matrix is nil")
	// ErrEmptyMatrix indicates the input grid has no rows or no columns.
	ErrEmptyMatrix = errors.New("game: code matrix must have at least one row and one column")
	// ErrNonSquareMatrix indicates the grid is not square or has ragged rows.
	ErrNonSquareMatrix = errors.New("game: code matrix must be square")
	// ErrBufferSize indicates a non-positive buffer size.
	ErrBufferSize = errors.New("game: buffer size must be at least 1")
	// ErrNoSequences indicates an empty upload-sequence list.
	ErrNoSequences = errors.New("game: at least one upload sequence is required")
	// ErrEmptySequence indicates an upload sequence with no tokens.
	ErrEmptySequence = errors.New("game: upload sequence must not be empty")
)

// Token is a single matrix code, e.g. "7A" or "BD".
type Token string

// Coord addresses one cell of a CodeMatrix.
type Coord struct {
	Row, Col int
}

// String renders the coordinate as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// UploadSequence is a target run of tokens to be matched as a contiguous
// part of a solution path. Priority ranks its importance: a LOWER number
// means a MORE valuable sequence (sequence 1 is the most valuable).
type UploadSequence struct {
	Tokens   []Token
	Priority int
}

// Len returns the number of tokens in the sequence.
func (s UploadSequence) Len() int { return len(s.Tokens) }

// Specification aggregates everything the solver needs: the code matrix,
// the upload sequences (with priorities), and the buffer size bounding the
// path length. It carries no behavior beyond validation.
type Specification struct {
	Matrix     *CodeMatrix
	Sequences  []UploadSequence
	BufferSize int
}

// Validate checks the structural invariants of the specification.
// A sequence longer than the buffer is deliberately NOT an error: it can
// never complete, and the solver treats it as permanently incomplete.
//
// Returns the first failing sentinel: ErrNilMatrix, ErrBufferSize,
// ErrNoSequences, or ErrEmptySequence.
func (s *Specification) Validate() error {
	if s.Matrix == nil {
		return ErrNilMatrix
	}
	if s.BufferSize < 1 {
		return ErrBufferSize
	}
	if len(s.Sequences) == 0 {
		return ErrNoSequences
	}
	for _, seq := range s.Sequences {
		if seq.Len() == 0 {
			return ErrEmptySequence
		}
	}

	return nil
}
