// Package breach is an exact solver for the "Breach Protocol" hacking
// minigame: given a square code matrix, a set of prioritized upload
// sequences, and a fixed input buffer, it finds the pick paths that
// complete the most valuable sequences.
//
// What's inside:
//
//	game/     — immutable domain model: CodeMatrix, UploadSequence, Specification
//	solver/   — the search engine: selection rules, progress tracking,
//	            explicit-stack DFS with feasibility pruning, solution ranking
//	gamefile/ — plain-text puzzle file loader
//	render/   — terminal output: annotated matrix, path, and summary
//	cmd/breach — the CLI binary
//
// Why choose this solver?
//
//   - Exact and exhaustive — no heuristics; every reachable solution is
//     considered, and pruning only discards provably hopeless branches
//   - Deterministic — identical input always yields identical output order
//   - Self-contained — each Solve call owns its state; safe for
//     concurrent batch runs without coordination
//
// Quick example:
//
//	spec, _ := gamefile.LoadFile("puzzle.txt")
//	sols, _ := solver.Solve(spec, solver.WithStrategy(solver.FindAllSolutions))
//	for _, sol := range sols {
//		fmt.Println(sol.Tokens(), sol)
//	}
//
//	go get github.com/katalvlaran/breach
package breach
