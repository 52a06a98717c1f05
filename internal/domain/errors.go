package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")
	ErrInvalidPuzzle = errors.New("invalid puzzle")
)

// ParseErrorKind tags the validation rule a puzzle file violated.
type ParseErrorKind int

const (
	KindEmptyInput ParseErrorKind = iota + 1
	KindInvalidGridCharacters
	KindInconsistentCase
	KindMissingSeparator
	KindMalformedGrid
)

func (k ParseErrorKind) String() string {
	switch k {
	case KindEmptyInput:
		return "EmptyInput"
	case KindInvalidGridCharacters:
		return "InvalidGridCharacters"
	case KindInconsistentCase:
		return "InconsistentCase"
	case KindMissingSeparator:
		return "MissingSeparator"
	case KindMalformedGrid:
		return "MalformedGrid"
	default:
		return fmt.Sprintf("ParseErrorKind(%d)", int(k))
	}
}

// Message returns the user-facing description of the kind.
func (k ParseErrorKind) Message() string {
	switch k {
	case KindEmptyInput:
		return "Empty file"
	case KindInvalidGridCharacters:
		return "Text grid should only contain letters"
	case KindInconsistentCase:
		return "Text grid letters should be consistent uppercase or lowercase form"
	case KindMissingSeparator:
		return "No grid or words to search"
	case KindMalformedGrid:
		return "Failed to initialize puzzle: Unequal number of rows and columns"
	default:
		return "invalid puzzle"
	}
}

// ParseError is returned when puzzle text fails validation.
// Line is the 1-based line of the trimmed input, or 0 when the failure
// is not tied to a single line.
type ParseError struct {
	Kind ParseErrorKind
	Line int
}

// NewParseError creates a ParseError of the given kind.
func NewParseError(kind ParseErrorKind, line int) *ParseError {
	return &ParseError{Kind: kind, Line: line}
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s", e.Line, e.Kind.Message())
	}
	return e.Kind.Message()
}

func (e *ParseError) Unwrap() error { return ErrInvalidPuzzle }

// ParseErrorKindOf returns the kind of the first ParseError in err's chain.
func ParseErrorKindOf(err error) (ParseErrorKind, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return 0, false
}

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
