// Package puzzle parses word-search puzzle text into a validated grid and
// word list. Pure function: text in, domain structs out.
//
// Format: grid rows (letters, optionally space separated, one case), one or
// more blank lines, then one word per line in any case.
package puzzle

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/wordsearch/internal/domain"
)

// Options tunes grid validation.
type Options struct {
	// AllowRectangular relaxes the default square check (every row length
	// equals the row count) to "every row has the first row's length".
	AllowRectangular bool
}

// Stats holds parser statistics for logging.
type Stats struct {
	TotalLines int
	BlankLines int
	GridRows   int
	GridCols   int
	Words      int
}

// ParseResult holds the parsed puzzle.
type ParseResult struct {
	Puzzle domain.Puzzle
	Stats  Stats
}

// state is the section of the input the parser is in.
type state int

const (
	stateReadingGrid state = iota
	stateReadingWords
)

// ParseFile reads a puzzle file and parses it.
// Read failures are returned wrapped and are not *domain.ParseError.
func ParseFile(path string, opts Options) (ParseResult, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ParseResult{}, fmt.Errorf("read puzzle: %w", err)
	}
	return Parse(string(raw), opts)
}

// Parse validates puzzle text and splits it into grid and words.
// Every failure is a *domain.ParseError.
func Parse(text string, opts Options) (ParseResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return ParseResult{}, domain.NewParseError(domain.KindEmptyInput, 0)
	}

	lines := strings.Split(text, "\n")

	first := lines[0]
	if !domain.HasLetter(first) {
		return ParseResult{}, domain.NewParseError(domain.KindInvalidGridCharacters, 1)
	}
	letterCase, ok := domain.DetectCase(first)
	if !ok {
		return ParseResult{}, domain.NewParseError(domain.KindInconsistentCase, 1)
	}

	var (
		st    = stateReadingGrid
		rows  []string
		words []string
		stats = Stats{TotalLines: len(lines)}
	)

	for i, raw := range lines {
		line := domain.CompactLine(raw)

		switch st {
		case stateReadingGrid:
			if line == "" {
				stats.BlankLines++
				st = stateReadingWords
				continue
			}
			if err := checkRow(line, letterCase, i+1); err != nil {
				return ParseResult{}, err
			}
			rows = append(rows, line)

		case stateReadingWords:
			if line == "" {
				stats.BlankLines++
				continue
			}
			words = append(words, domain.NormalizeWord(raw, letterCase))
		}
	}

	if st != stateReadingWords {
		return ParseResult{}, domain.NewParseError(domain.KindMissingSeparator, 0)
	}

	if err := checkShape(rows, opts); err != nil {
		return ParseResult{}, err
	}

	grid := domain.NewGrid(rows, letterCase)
	stats.GridRows = grid.Rows()
	stats.GridCols = grid.Cols()
	stats.Words = len(words)

	return ParseResult{
		Puzzle: domain.NewPuzzle(grid, words),
		Stats:  stats,
	}, nil
}

// checkRow validates one grid row against the grid case.
func checkRow(row string, c domain.LetterCase, lineNo int) error {
	if !domain.HasLetter(row) {
		return domain.NewParseError(domain.KindInvalidGridCharacters, lineNo)
	}
	if got, ok := domain.DetectCase(row); !ok || got != c {
		return domain.NewParseError(domain.KindInconsistentCase, lineNo)
	}
	return nil
}

// checkShape enforces the grid shape. Lengths count runes, not bytes.
func checkShape(rows []string, opts Options) error {
	want := len(rows)
	if opts.AllowRectangular {
		want = utf8.RuneCountInString(rows[0])
	}
	for _, row := range rows {
		if utf8.RuneCountInString(row) != want {
			return domain.NewParseError(domain.KindMalformedGrid, 0)
		}
	}
	return nil
}
