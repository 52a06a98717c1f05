// Package search locates words in a puzzle grid along rows and columns,
// reading forward and backward.
//
// Scan order is index-major: row 0, column 0, row 1, column 1, and so on.
// Within a line the forward reading is tried before the backward one. The
// first line that contains the word wins, so a row match at index 2 beats a
// column match at index 3 even if both exist.
package search

import (
	"slices"

	"github.com/heartmarshall/wordsearch/internal/domain"
)

// Search finds every word in grid and returns one entry per word in the
// order given. Words that do not occur get domain.NotFound.
func Search(grid domain.Grid, words []string) domain.Result {
	entries := make([]domain.Entry, 0, len(words))
	for _, w := range words {
		entries = append(entries, domain.Entry{Word: w, Match: Find(grid, w)})
	}
	return domain.NewResult(entries)
}

// Find returns the first placement of word in grid.
func Find(grid domain.Grid, word string) domain.Match {
	forward := []rune(word)
	if len(forward) == 0 {
		return domain.NotFound
	}
	backward := slices.Clone(forward)
	slices.Reverse(backward)

	rows, cols := grid.Rows(), grid.Cols()
	for i := range max(rows, cols) {
		if i < rows {
			if m, ok := findInRow(grid.Row(i), i, forward, backward); ok {
				return m
			}
		}
		if i < cols {
			if m, ok := findInColumn(grid.Column(i), i, forward, backward); ok {
				return m
			}
		}
	}
	return domain.NotFound
}

// findInRow checks row i. Offsets are 0-based positions along the row.
func findInRow(line []rune, i int, forward, backward []rune) (domain.Match, bool) {
	first, last, ok := locate(line, forward, backward)
	if !ok {
		return domain.Match{}, false
	}
	return domain.MatchAt(
		domain.Coordinate{Col: first + 1, Row: i + 1},
		domain.Coordinate{Col: last + 1, Row: i + 1},
	), true
}

// findInColumn checks column i. Offsets are 0-based positions down the column.
func findInColumn(line []rune, i int, forward, backward []rune) (domain.Match, bool) {
	first, last, ok := locate(line, forward, backward)
	if !ok {
		return domain.Match{}, false
	}
	return domain.MatchAt(
		domain.Coordinate{Col: i + 1, Row: first + 1},
		domain.Coordinate{Col: i + 1, Row: last + 1},
	), true
}

// locate returns the offsets of the word's first and last letters in line.
// For a backward reading first > last.
func locate(line, forward, backward []rune) (first, last int, ok bool) {
	n := len(forward)
	if at := indexRunes(line, forward); at >= 0 {
		return at, at + n - 1, true
	}
	if at := indexRunes(line, backward); at >= 0 {
		return at + n - 1, at, true
	}
	return 0, 0, false
}

// indexRunes returns the offset of the first occurrence of needle in hay,
// or -1.
func indexRunes(hay, needle []rune) int {
	n := len(needle)
	for at := 0; at+n <= len(hay); at++ {
		if slices.Equal(hay[at:at+n], needle) {
			return at
		}
	}
	return -1
}
