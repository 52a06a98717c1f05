package domain

import (
	"fmt"
	"slices"
)

// Coordinate is a 1-based (column, row) grid position.
type Coordinate struct {
	Col int
	Row int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.Col, c.Row)
}

// Match is the placement of a word in the grid. Start is where the word's
// first letter sits and End where its last letter sits. A zero Match means
// the word was not found.
type Match struct {
	Start Coordinate
	End   Coordinate
	Found bool
}

// NotFound is the sentinel Match for a word with no placement.
var NotFound = Match{}

// MatchAt returns a found Match spanning start to end.
func MatchAt(start, end Coordinate) Match {
	return Match{Start: start, End: end, Found: true}
}

// Entry pairs a searched word with its Match.
type Entry struct {
	Word  string
	Match Match
}

// Result holds one Entry per searched word, in word-list order.
type Result struct {
	entries []Entry
}

// NewResult creates a Result. Entries are copied.
func NewResult(entries []Entry) Result {
	return Result{entries: slices.Clone(entries)}
}

// Entries returns the entries in word-list order.
func (r Result) Entries() []Entry { return slices.Clone(r.entries) }

// Len returns the number of entries.
func (r Result) Len() int { return len(r.entries) }

// Words returns the searched words in order.
func (r Result) Words() []string {
	words := make([]string, len(r.entries))
	for i, e := range r.entries {
		words[i] = e.Word
	}
	return words
}

// Lookup returns the Match of the first entry for word.
func (r Result) Lookup(word string) (Match, bool) {
	for _, e := range r.entries {
		if e.Word == word {
			return e.Match, true
		}
	}
	return Match{}, false
}

// FoundCount returns how many entries were found.
func (r Result) FoundCount() int {
	n := 0
	for _, e := range r.entries {
		if e.Match.Found {
			n++
		}
	}
	return n
}
