// Command breach solves Breach Protocol puzzle files.
//
// Usage:
//
//	breach [-all] [-max N] FILE
//
// FILE holds the puzzle: buffer size, matrix size, sequence count, then
// the matrix rows and the upload sequences (see package gamefile). By
// default the first solution found is printed; -all finds every solution,
// ranked by value and path length, printing at most N of them.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/katalvlaran/breach/gamefile"
	"github.com/katalvlaran/breach/render"
	"github.com/katalvlaran/breach/solver"
)

func main() {
	all := flag.Bool("all", false, "find all solutions instead of the first matching one")
	maxPrint := flag.Int("max", 10000, "maximum number of solutions to print")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: breach [-all] [-max N] FILE")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	spec, err := gamefile.LoadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "breach:", err)
		os.Exit(1)
	}

	strategy := solver.FindFirstSolution
	if *all {
		strategy = solver.FindAllSolutions
	}

	start := time.Now()
	sols, err := solver.Solve(spec, solver.WithStrategy(strategy))
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintln(os.Stderr, "breach:", err)
		os.Exit(1)
	}

	r := render.NewWithOutput(os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))
	for i, sol := range sols {
		if i >= *maxPrint {
			break
		}
		r.Solution(spec.Matrix, sol)
	}
	r.Summary(len(sols), elapsed)
}
