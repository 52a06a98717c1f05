package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestDigest(t *testing.T) {
	t.Parallel()

	a := Digest([]byte("CAT\n\nCAT"))
	b := Digest([]byte("CAT\n\nCAT"))
	c := Digest([]byte("DOG\n\nDOG"))

	if len(a) != 64 {
		t.Fatalf("digest length = %d, want 64 hex chars", len(a))
	}
	if a != b {
		t.Error("digest of equal input differs")
	}
	if a == c {
		t.Error("digest of different input collides")
	}
}

func TestRun_Validate(t *testing.T) {
	t.Parallel()

	valid := Run{
		ID:         uuid.New(),
		SourcePath: "animals.pzl",
		Digest:     Digest([]byte("x")),
		Rows:       3,
		Cols:       3,
		LetterCase: CaseUpper,
		CreatedAt:  time.Now(),
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid run: %v", err)
	}

	invalid := Run{Digest: "abc", LetterCase: "title"}
	err := invalid.Validate()
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatal("expected *ValidationError")
	}
	if len(ve.Errors) != 5 {
		t.Fatalf("expected 5 field errors, got %d: %v", len(ve.Errors), ve.Errors)
	}
}
