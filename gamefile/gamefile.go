// Package gamefile loads Breach Protocol puzzles from their plain-text
// file format:
//
//	line 1: buffer size
//	line 2: matrix size (rows == columns)
//	line 3: upload sequence count
//	then <matrix size> rows of whitespace-separated tokens
//	then <sequence count> upload sequences, one per line
//
// Sequence priorities are assigned 1..n in file order: the first listed
// sequence is the most valuable. Blank lines are ignored.
//
// Errors:
//
//   - ErrShortFile  the file ends before all declared sections are present
//   - ErrBadNumber  a header line is not a positive integer
//   - ErrRowWidth   a matrix row's token count differs from the matrix size
//   - game.* validation sentinels from the assembled specification
package gamefile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/breach/game"
)

// Sentinel errors for puzzle file parsing.
var (
	// ErrShortFile indicates the file ended before all sections were read.
	ErrShortFile = errors.New("gamefile: file ends before all sections are present")
	// ErrBadNumber indicates a header line that is not a positive integer.
	ErrBadNumber = errors.New("gamefile: header line is not a positive integer")
	// ErrRowWidth indicates a matrix row with the wrong number of tokens.
	ErrRowWidth = errors.New("gamefile: matrix row has wrong number of tokens")
)

// LoadFile reads and parses the puzzle file at path.
func LoadFile(path string) (*game.Specification, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gamefile: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Load parses a puzzle from r and returns a validated specification.
// Complexity: O(n² + s·b) for an n×n matrix with s sequences.
func Load(r io.Reader) (*game.Specification, error) {
	lines, err := nonBlankLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) < 3 {
		return nil, ErrShortFile
	}

	// 1. Header: buffer size, matrix size, sequence count.
	bufferSize, err := positiveInt(lines[0])
	if err != nil {
		return nil, err
	}
	matrixSize, err := positiveInt(lines[1])
	if err != nil {
		return nil, err
	}
	seqCount, err := positiveInt(lines[2])
	if err != nil {
		return nil, err
	}
	if len(lines) < 3+matrixSize+seqCount {
		return nil, ErrShortFile
	}

	// 2. Matrix rows.
	cells := make([][]game.Token, matrixSize)
	for i := 0; i < matrixSize; i++ {
		row := tokens(lines[3+i])
		if len(row) != matrixSize {
			return nil, fmt.Errorf("%w: row %d has %d tokens, want %d", ErrRowWidth, i, len(row), matrixSize)
		}
		cells[i] = row
	}
	matrix, err := game.NewCodeMatrix(cells)
	if err != nil {
		return nil, err
	}

	// 3. Upload sequences; file order is value order (priority 1 first).
	seqs := make([]game.UploadSequence, seqCount)
	for i := 0; i < seqCount; i++ {
		seqs[i] = game.UploadSequence{
			Tokens:   tokens(lines[3+matrixSize+i]),
			Priority: i + 1,
		}
	}

	spec := &game.Specification{
		Matrix:     matrix,
		Sequences:  seqs,
		BufferSize: bufferSize,
	}
	if err = spec.Validate(); err != nil {
		return nil, err
	}

	return spec, nil
}

// nonBlankLines reads r into trimmed lines, skipping blank ones.
func nonBlankLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gamefile: %w", err)
	}

	return lines, nil
}

// positiveInt parses a header line as a strictly positive integer.
func positiveInt(line string) (int, error) {
	n, err := strconv.Atoi(line)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q", ErrBadNumber, line)
	}

	return n, nil
}

// tokens splits a line into matrix tokens.
func tokens(line string) []game.Token {
	fields := strings.Fields(line)
	out := make([]game.Token, len(fields))
	for i, f := range fields {
		out[i] = game.Token(f)
	}

	return out
}
