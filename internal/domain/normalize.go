package domain

import (
	"strings"
	"unicode"
)

// LetterCase is the single case every letter of a grid is written in.
type LetterCase string

const (
	CaseUpper LetterCase = "upper"
	CaseLower LetterCase = "lower"
)

// Valid reports whether c is a known case.
func (c LetterCase) Valid() bool {
	return c == CaseUpper || c == CaseLower
}

// Apply converts s to the case. Unknown cases leave s unchanged.
func (c LetterCase) Apply(s string) string {
	switch c {
	case CaseUpper:
		return strings.ToUpper(s)
	case CaseLower:
		return strings.ToLower(s)
	default:
		return s
	}
}

// DetectCase reports the case of the cased letters in s. ok is false when s
// has no cased letter or mixes upper and lower case. Non-letters are ignored.
func DetectCase(s string) (c LetterCase, ok bool) {
	var upper, lower bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		}
	}
	switch {
	case upper && !lower:
		return CaseUpper, true
	case lower && !upper:
		return CaseLower, true
	default:
		return "", false
	}
}

// HasLetter reports whether s contains at least one letter.
func HasLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}

// CompactLine removes all whitespace from a line, so "C A T" and "CAT"
// read the same.
func CompactLine(line string) string {
	return strings.Join(strings.Fields(line), "")
}

// NormalizeWord prepares a target word for searching:
//   - removes all whitespace
//   - converts to the grid's letter case
func NormalizeWord(word string, c LetterCase) string {
	return c.Apply(CompactLine(word))
}
