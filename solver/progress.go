// Package solver — sequence-progress tracker.
//
// For every tracked upload sequence the engine keeps a single integer:
// how many tokens the sequence still needs before it is complete at the
// current match offset. The counts live in a fresh slice per stack frame,
// so backtracking is exact reversibility by construction: popping a frame
// restores the precise prior state with no rollback bookkeeping.

package solver

import "github.com/katalvlaran/breach/game"

// progress holds the sequences the engine tracks. Sequences longer than
// the buffer are filtered out up front: they can never complete, must not
// block the completion check, and are never reported as completed.
type progress struct {
	seqs []game.UploadSequence
}

// newProgress selects the trackable sequences for the given buffer size.
func newProgress(seqs []game.UploadSequence, bufferSize int) *progress {
	p := &progress{seqs: make([]game.UploadSequence, 0, len(seqs))}
	for _, seq := range seqs {
		if seq.Len() <= bufferSize {
			p.seqs = append(p.seqs, seq)
		}
	}

	return p
}

// trackable reports whether any sequence can be completed at all.
func (p *progress) trackable() bool { return len(p.seqs) > 0 }

// start returns the remaining counts after the very first pick: each
// sequence needs its full length, minus one if the pick matches its
// first token.
func (p *progress) start(tok game.Token) []int {
	rem := make([]int, len(p.seqs))
	for i, seq := range p.seqs {
		rem[i] = seq.Len()
		if seq.Tokens[0] == tok {
			rem[i]--
		}
	}

	return rem
}

// advance returns a fresh remaining slice after appending tok to the path.
// Per sequence:
//   - already complete (0) stays 0: extra input cannot un-complete it;
//   - tok matches the next needed token: decrement;
//   - tok breaks the run: restart the match, counting tok itself when it
//     happens to equal the sequence's first token.
//
// Complexity: O(s) time and memory, s = tracked sequence count.
func (p *progress) advance(prev []int, tok game.Token) []int {
	rem := make([]int, len(prev))
	for i, r := range prev {
		switch {
		case r == 0:
			rem[i] = 0
		case p.seqs[i].Tokens[p.seqs[i].Len()-r] == tok:
			rem[i] = r - 1
		case p.seqs[i].Tokens[0] == tok:
			rem[i] = p.seqs[i].Len() - 1
		default:
			rem[i] = p.seqs[i].Len()
		}
	}

	return rem
}

// mostRemaining returns the largest remaining count. Zero means every
// tracked sequence is complete; it is also the exact feasibility bound:
// a path with fewer buffer slots left than mostRemaining cannot succeed.
func mostRemaining(rem []int) int {
	most := 0
	for _, r := range rem {
		if r > most {
			most = r
		}
	}

	return most
}
