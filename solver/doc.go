// Package solver finds buffer-bounded paths through a Breach Protocol
// code matrix that complete the upload sequences of a game.Specification.
//
// What:
//
//   - Solve(spec, opts...): the single entry point. Validates the
//     specification, runs an explicit-stack depth-first search, and
//     returns ranked Solutions.
//   - LegalNextSteps: the selection-rule engine — the alternating
//     row-bound/column-bound pick rule, exposed as a pure function.
//   - Strategy: FindFirstSolution (default) or FindAllSolutions.
//   - Solution: the path (Steps), the completed sequence indices, and a
//     priority-weighted Value used for ranking.
//
// Why:
//
//	The minigame asks for an ordered set of cell picks, starting in the
//	top row and alternating between the row and column of the previous
//	pick, such that the picked tokens contain each upload sequence as a
//	contiguous run — all within a fixed input buffer. When the buffer
//	cannot satisfy every sequence, the engine sacrifices the least
//	valuable priority group and completes the rest.
//
// Guarantees:
//
//   - Deterministic: fixed input and strategy always produce the same
//     solutions in the same order.
//   - Exact: no heuristics; the explored state space is exhaustive up to
//     feasibility pruning, which never discards a viable branch.
//   - Self-contained: each Solve call owns its stack and progress state,
//     so concurrent calls need no coordination.
//
// Options:
//
//   - WithStrategy(s)  choose FindFirstSolution or FindAllSolutions.
//   - WithContext(ctx) abort a long search via cancellation or deadline.
//
// Errors:
//
//   - ErrNilSpec                 spec pointer is nil
//   - game validation sentinels  malformed specification, before search
//   - context.Canceled           search aborted via context
//
// An empty result with a nil error means "no solution exists", which is a
// valid outcome the caller must handle, not a failure.
package solver
