// Package render prints solved Breach Protocol puzzles to a terminal:
// the token sequence, the pick path, and the code matrix annotated with
// pick numbers. Output is plain text when colors are disabled, so it can
// be piped or diffed; on a color terminal the picked cells are styled.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/breach/game"
	"github.com/katalvlaran/breach/solver"
)

// cellWidth is the printed width of one matrix cell: a token, a space,
// and an annotation like "(12)" left-justified in six columns.
const cellWidth = 9

// Renderer writes styled puzzle output to a single destination.
type Renderer struct {
	out   io.Writer
	color bool

	pickStyle lipgloss.Style
	headStyle lipgloss.Style
	dimStyle  lipgloss.Style
}

// New returns a Renderer writing to stdout, with colors enabled when the
// environment advertises a color profile.
func New() *Renderer {
	return NewWithOutput(os.Stdout, termenv.ColorProfile() != termenv.Ascii)
}

// NewWithOutput returns a Renderer writing to out. Styling is applied
// only when color is true.
func NewWithOutput(out io.Writer, color bool) *Renderer {
	return &Renderer{
		out:   out,
		color: color,

		// Picked cells: green, bold.
		pickStyle: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#008000", Dark: "#55FF55"}).
			Bold(true),

		// Headings ("Solution:", "Path:"): bold.
		headStyle: lipgloss.NewStyle().Bold(true),

		// Unpicked cells and summaries: dim.
		dimStyle: lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"}),
	}
}

// Solution prints one solution: the token line, the path line, and the
// matrix with each picked cell annotated by its 1-based pick number.
func (r *Renderer) Solution(m *game.CodeMatrix, sol solver.Solution) {
	tokens := make([]string, len(sol.Steps))
	for i, st := range sol.Steps {
		tokens[i] = string(st.Token)
	}
	fmt.Fprintf(r.out, "%s %s\n", r.styled(r.headStyle, "Solution:"), strings.Join(tokens, " "))
	fmt.Fprintf(r.out, "%s %s\n", r.styled(r.headStyle, "Path:"), sol.String())

	picked := make(map[game.Coord]int, len(sol.Steps))
	for i, st := range sol.Steps {
		picked[st.Coord()] = i + 1
	}

	size := m.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			c := game.Coord{Row: row, Col: col}
			tok := string(m.At(c))
			if n, ok := picked[c]; ok {
				r.cell(fmt.Sprintf("%s (%d)", tok, n), r.pickStyle)
			} else {
				r.cell(tok, r.dimStyle)
			}
		}
		fmt.Fprintln(r.out)
	}
	fmt.Fprintln(r.out)
}

// Summary prints the solution count and the elapsed search time.
func (r *Renderer) Summary(n int, elapsed time.Duration) {
	fmt.Fprintf(r.out, "Found %d solutions in %.3f seconds\n", n, elapsed.Seconds())
}

// cell writes one matrix cell padded to cellWidth. Padding is appended
// after styling: ANSI escape bytes must not count toward the cell width.
func (r *Renderer) cell(text string, style lipgloss.Style) {
	pad := cellWidth - len(text)
	if pad < 1 {
		pad = 1
	}
	fmt.Fprint(r.out, r.styled(style, text), strings.Repeat(" ", pad))
}

// styled applies style only when colors are enabled.
func (r *Renderer) styled(style lipgloss.Style, text string) string {
	if !r.color {
		return text
	}

	return style.Render(text)
}
