// Package solver implements the Breach Protocol search engine: an
// explicit-stack depth-first traversal over the code matrix that finds
// buffer-bounded paths completing the upload sequences.
//
// Key features:
//   - Solve(spec, opts...): first-solution or exhaustive all-solutions mode
//   - Explicit stack (no call recursion): memory stays proportional to the
//     buffer size times the branching factor, and the loop has a single
//     cancellation point
//   - Feasibility pruning: a branch is abandoned the moment its remaining
//     buffer cannot cover the most-demanding incomplete sequence
//   - Partial-solution policy: when full completion is impossible, the
//     least valuable priority group is discarded and the search retried,
//     so higher-value sequences are never foreclosed by hopeless ones
//   - Cancellation via context.Context (checked sparsely; practically free)
//
// Complexity:
//
//   - Worst case exponential in the buffer size (exact search); pruning
//     keeps realistic game instances at a few thousand frames.
//   - Per frame: O(s) progress update + O(n) candidate enumeration,
//     where s = sequence count and n = matrix size.
//   - Memory: O(b) per frame (path copy + remaining counts), b = buffer.
//
// Errors:
//
//   - ErrNilSpec and the game.* validation sentinels, before any search.
//   - context.Canceled / context.DeadlineExceeded if the caller's context
//     fires mid-search.
//   - "No solution" is NOT an error: Solve returns an empty result.

package solver

import (
	"context"

	"github.com/katalvlaran/breach/game"
)

// frame is one node of the search: the path so far plus the per-sequence
// remaining counts at that point. Remaining counts are value-copied into
// every frame, so popping a frame is an exact rollback.
type frame struct {
	steps     []Step
	remaining []int
}

// engine holds all state of a single search pass. Each Solve call builds
// its own engines, so concurrent Solve calls never share mutable state.
type engine struct {
	mat      *game.CodeMatrix
	buffer   int
	prog     *progress
	strategy Strategy
	ctx      context.Context

	// Full specification sequence list and its maximum priority number,
	// used to report Completed/Value against the original spec even when
	// the tracked set was reduced by the priority fallback.
	allSeqs []game.UploadSequence
	maxPrio int

	stack  []frame
	sols   []Solution
	frames int // sparse cancellation-check counter
}

// Solve searches the code matrix for paths that complete the upload
// sequences within the buffer, honoring the row/column alternation rule.
//
// The returned solutions are ranked by Value (descending), then by path
// length (ascending), then by discovery order. FindFirstSolution returns
// at most one element; an empty result means no solution exists, which is
// a valid outcome, not an error.
//
// When no path completes every sequence, Solve discards the sequences of
// the largest priority number (the least valuable group) and retries, so
// the result completes the most valuable subset that is achievable.
func Solve(spec *game.Specification, opts ...Option) ([]Solution, error) {
	// 1. Validate input.
	if spec == nil {
		return nil, ErrNilSpec
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	// 2. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	maxPrio := 0
	for _, seq := range spec.Sequences {
		if seq.Priority > maxPrio {
			maxPrio = seq.Priority
		}
	}

	// 3. Search; on full failure, drop the least valuable priority group
	// and retry until solutions appear or nothing is left to drop.
	active := spec.Sequences
	for {
		prog := newProgress(active, spec.BufferSize)
		if !prog.trackable() {
			return nil, nil
		}

		e := &engine{
			mat:      spec.Matrix,
			buffer:   spec.BufferSize,
			prog:     prog,
			strategy: o.Strategy,
			ctx:      o.Ctx,
			allSeqs:  spec.Sequences,
			maxPrio:  maxPrio,
		}
		sols, err := e.run()
		if err != nil {
			return sols, err
		}
		if len(sols) > 0 {
			rank(sols)

			return sols, nil
		}

		active = dropLeastValuable(active)
		if active == nil {
			return nil, nil
		}
	}
}

// run executes one search pass requiring every tracked sequence to
// complete. It returns the solutions found (unranked, in discovery order).
func (e *engine) run() ([]Solution, error) {
	// Seed the stack with every cell of the top row: the game's first pick
	// is always row-bound. Candidates are pushed in ascending column order;
	// LIFO popping therefore explores the highest column first, which fixes
	// the solution FindFirstSolution discovers.
	for _, st := range LegalNextSteps(e.mat, nil) {
		e.stack = append(e.stack, frame{
			steps:     []Step{st},
			remaining: e.prog.start(st.Token),
		})
	}

	for len(e.stack) > 0 {
		if e.cancelled() {
			return e.sols, e.ctx.Err()
		}

		fr := e.stack[len(e.stack)-1]
		e.stack = e.stack[:len(e.stack)-1]

		most := mostRemaining(fr.remaining)

		// Full completion: record a solution. Completed frames are leaves;
		// extending them only produces longer paths with the same value.
		if most == 0 {
			e.sols = append(e.sols, e.newSolution(fr.steps))
			if e.strategy == FindFirstSolution {
				return e.sols, nil
			}

			continue
		}

		// Feasibility pruning: the remaining buffer must cover the
		// most-demanding incomplete sequence or the branch is hopeless.
		if e.buffer-len(fr.steps) < most {
			continue
		}

		for _, st := range LegalNextSteps(e.mat, fr.steps) {
			steps := make([]Step, len(fr.steps), len(fr.steps)+1)
			copy(steps, fr.steps)
			steps = append(steps, st)
			e.stack = append(e.stack, frame{
				steps:     steps,
				remaining: e.prog.advance(fr.remaining, st.Token),
			})
		}
	}

	return e.sols, nil
}

// cancelled performs a rare context check (every 1024 frames, including
// the first) to keep the hot loop free of channel operations.
func (e *engine) cancelled() bool {
	if e.frames&1023 == 0 {
		select {
		case <-e.ctx.Done():
			return true
		default:
		}
	}
	e.frames++

	return false
}

// newSolution packages a completed path. The completed set and value are
// recomputed against the FULL specification sequence list: a path found
// for a reduced sequence set may still incidentally complete a dropped
// sequence, and it must be credited for it.
func (e *engine) newSolution(steps []Step) Solution {
	tokens := make([]game.Token, len(steps))
	for i, st := range steps {
		tokens[i] = st.Token
	}

	sol := Solution{Steps: steps}
	for i, seq := range e.allSeqs {
		if containsRun(tokens, seq.Tokens) {
			sol.Completed = append(sol.Completed, i)
			sol.Value += e.maxPrio + 1 - seq.Priority
		}
	}

	return sol
}

// containsRun reports whether run appears as a contiguous subsequence
// of tokens. Both slices are buffer-bounded, so the naive scan is fine.
func containsRun(tokens, run []game.Token) bool {
	if len(run) == 0 || len(run) > len(tokens) {
		return false
	}
	for start := 0; start+len(run) <= len(tokens); start++ {
		match := true
		for i := range run {
			if tokens[start+i] != run[i] {
				match = false

				break
			}
		}
		if match {
			return true
		}
	}

	return false
}

// dropLeastValuable returns seqs without its largest-priority-number group
// (lower number = more valuable, so the largest number is dropped first).
// Returns nil when only one distinct priority remains: there is nothing
// left to sacrifice.
func dropLeastValuable(seqs []game.UploadSequence) []game.UploadSequence {
	worst, distinct := seqs[0].Priority, false
	for _, seq := range seqs[1:] {
		if seq.Priority != seqs[0].Priority {
			distinct = true
		}
		if seq.Priority > worst {
			worst = seq.Priority
		}
	}
	if !distinct {
		return nil
	}

	out := make([]game.UploadSequence, 0, len(seqs))
	for _, seq := range seqs {
		if seq.Priority != worst {
			out = append(out, seq)
		}
	}

	return out
}
