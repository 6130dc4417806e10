// Solver types and options: solving strategies, functional options, the
// Step/Solution shapes, and the package's sentinel errors.

package solver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/breach/game"
)

// ErrNilSpec is returned when a nil *game.Specification is passed to Solve.
var ErrNilSpec = errors.New("solver: specification is nil")

// Strategy selects how much of the search space Solve explores.
type Strategy int

const (
	// FindFirstSolution stops at the first full completion found.
	// Extremely fast, but the path may be longer than necessary.
	FindFirstSolution Strategy = iota

	// FindAllSolutions exhausts the search space and returns every
	// solution, ranked by value and then by path length (shortest first).
	// Still fast for the instances that realistically occur in the game.
	FindAllSolutions
)

// Option configures optional behavior of Solve.
// Use with Solve(spec, opts...).
type Option func(*Options)

// Options holds configurable parameters for the search.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancelling the context aborts the search early with ctx.Err().
	Ctx context.Context

	// Strategy chooses first-solution or all-solutions mode.
	// Default is FindFirstSolution.
	Strategy Strategy
}

// DefaultOptions returns an Options struct with:
//   - Background context
//   - FindFirstSolution strategy
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Strategy: FindFirstSolution,
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStrategy returns an Option that sets the solving strategy.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		o.Strategy = s
	}
}

// Step is a single pick in a solution path: the cell coordinate and the
// token it contributes to the input buffer.
type Step struct {
	Token    game.Token
	Row, Col int
}

// Coord returns the step's matrix coordinate.
func (s Step) Coord() game.Coord { return game.Coord{Row: s.Row, Col: s.Col} }

// Solution is one valid path through the code matrix. Immutable once
// constructed by the engine.
type Solution struct {
	// Steps is the ordered sequence of picks.
	Steps []Step

	// Completed lists the indices (into Specification.Sequences) of every
	// upload sequence whose token run appears contiguously in the path,
	// in ascending index order.
	Completed []int

	// Value is the priority-weighted worth of the completed set: each
	// completed sequence contributes maxPriority+1-Priority, so lower
	// priority numbers weigh more. Used for ranking.
	Value int
}

// Tokens returns the path's token values in pick order.
func (s Solution) Tokens() []game.Token {
	out := make([]game.Token, len(s.Steps))
	for i, st := range s.Steps {
		out[i] = st.Token
	}

	return out
}

// String renders the path as "(0,5) > (5,5) > ...".
func (s Solution) String() string {
	parts := make([]string, len(s.Steps))
	for i, st := range s.Steps {
		parts[i] = fmt.Sprintf("(%d,%d)", st.Row, st.Col)
	}

	return strings.Join(parts, " > ")
}
