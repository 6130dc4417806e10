// Package game holds the domain model of the Breach Protocol minigame.
//
// What:
//
//   - CodeMatrix: the square, immutable grid of tokens (e.g. "7A", "BD")
//     the player reads from.
//   - UploadSequence: a target run of tokens plus its Priority
//     (lower number = more valuable; sequence 1 is the most valuable).
//   - Specification: matrix + ordered sequences + buffer size, with
//     Validate() enforcing structural invariants.
//
// Why:
//
//	The solver (package solver) consumes a validated Specification and
//	owns all behavior; this package is pure data with validation only,
//	so specifications can be built by any loader (package gamefile, tests,
//	or callers embedding the solver) without pulling in search logic.
//
// Invariants:
//
//   - CodeMatrix is square; every row has the same length.
//   - Every UploadSequence is non-empty.
//   - BufferSize ≥ 1.
//   - A sequence longer than the buffer is valid input: it can never be
//     completed and the solver treats it as permanently incomplete.
//
// Errors:
//
//   - ErrNilMatrix, ErrEmptyMatrix, ErrNonSquareMatrix
//   - ErrBufferSize, ErrNoSequences, ErrEmptySequence
package game
