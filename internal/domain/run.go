package domain

import (
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/blake2b"
)

// Run is the stored record of one solved puzzle.
type Run struct {
	ID         uuid.UUID
	SourcePath string
	Digest     string // hex BLAKE2b-256 of the raw puzzle text
	Rows       int
	Cols       int
	LetterCase LetterCase
	Result     Result
	CreatedAt  time.Time
}

// Digest returns the hex BLAKE2b-256 sum of raw puzzle text.
func Digest(raw []byte) string {
	sum := blake2b.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// Validate checks the fields required for persisting a run.
func (r Run) Validate() error {
	var errs []FieldError
	if r.ID == uuid.Nil {
		errs = append(errs, FieldError{Field: "id", Message: "required"})
	}
	if len(r.Digest) != hex.EncodedLen(blake2b.Size256) {
		errs = append(errs, FieldError{Field: "digest", Message: "must be a hex BLAKE2b-256 sum"})
	}
	if r.Rows <= 0 || r.Cols <= 0 {
		errs = append(errs, FieldError{Field: "grid", Message: "dimensions must be positive"})
	}
	if !r.LetterCase.Valid() {
		errs = append(errs, FieldError{Field: "letter_case", Message: "must be upper or lower"})
	}
	if r.CreatedAt.IsZero() {
		errs = append(errs, FieldError{Field: "created_at", Message: "required"})
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
