package domain

import (
	"slices"
	"strings"
)

// Grid is a block of letters addressed by 0-based row and column indices.
// It is immutable once built: accessors return copies.
type Grid struct {
	rows       [][]rune
	letterCase LetterCase
}

// NewGrid builds a Grid from row strings. Rows are copied.
func NewGrid(rows []string, c LetterCase) Grid {
	g := Grid{
		rows:       make([][]rune, len(rows)),
		letterCase: c,
	}
	for i, row := range rows {
		g.rows[i] = []rune(row)
	}
	return g
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return len(g.rows) }

// Cols returns the length of the first row, or 0 for an empty grid.
func (g Grid) Cols() int {
	if len(g.rows) == 0 {
		return 0
	}
	return len(g.rows[0])
}

// Case returns the letter case shared by every letter of the grid.
func (g Grid) Case() LetterCase { return g.letterCase }

// Row returns the letters of row i read left to right.
func (g Grid) Row(i int) []rune {
	return slices.Clone(g.rows[i])
}

// Column returns the letters of column i read top to bottom.
// Rows too short to reach column i are skipped.
func (g Grid) Column(i int) []rune {
	col := make([]rune, 0, len(g.rows))
	for _, row := range g.rows {
		if i < len(row) {
			col = append(col, row[i])
		}
	}
	return col
}

// String renders the grid one row per line.
func (g Grid) String() string {
	lines := make([]string, len(g.rows))
	for i, row := range g.rows {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}

// Puzzle is a validated grid together with the ordered words to find in it.
type Puzzle struct {
	grid  Grid
	words []string
}

// NewPuzzle creates a Puzzle. Words are copied.
func NewPuzzle(grid Grid, words []string) Puzzle {
	return Puzzle{grid: grid, words: slices.Clone(words)}
}

// Grid returns the puzzle's grid.
func (p Puzzle) Grid() Grid { return p.grid }

// Words returns the words to find, in source order.
func (p Puzzle) Words() []string { return slices.Clone(p.words) }
