// Package gridio parses and writes the text grid format described in
// spec §6: a rectangular character grid where '1' is alive, '0' is
// dead, every row has equal length, and trailing blank lines are
// ignored. This is an external-collaborator concern (spec §1) and
// deliberately minimal.
package gridio

import (
	"fmt"
	"strings"

	"github.com/rrumana/game-of-life-reverse/internal/grid"
)

// InvalidInputError is returned for malformed input grids: non-binary
// characters, or rows of unequal length.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("gridio: invalid input: %s", e.Reason)
}

// Parse reads a text grid under the given boundary discipline.
// Trailing blank lines are ignored; every remaining row must have
// equal length and contain only '0'/'1'.
func Parse(text string, b grid.Boundary) (*grid.Grid, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	if len(lines) == 0 {
		return grid.New(0, 0, b), nil
	}

	w := len(lines[0])
	rows := make([][]bool, len(lines))
	for y, line := range lines {
		if len(line) != w {
			return nil, &InvalidInputError{Reason: fmt.Sprintf("row %d has length %d, expected %d", y, len(line), w)}
		}
		row := make([]bool, w)
		for x, ch := range line {
			switch ch {
			case '1':
				row[x] = true
			case '0':
				row[x] = false
			default:
				return nil, &InvalidInputError{Reason: fmt.Sprintf("row %d, col %d: non-binary character %q", y, x, ch)}
			}
		}
		rows[y] = row
	}

	g, err := grid.FromRows(rows, b)
	if err != nil {
		return nil, &InvalidInputError{Reason: err.Error()}
	}
	return g, nil
}

// Write renders a grid as the same text format Parse accepts: one
// line per row, '1' for alive and '0' for dead, no trailing newline.
func Write(g *grid.Grid) string {
	var sb strings.Builder
	for y, row := range g.Rows() {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range row {
			if v {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
	}
	return sb.String()
}
