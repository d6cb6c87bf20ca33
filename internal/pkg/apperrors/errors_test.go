package apperrors

import (
	"errors"
	"testing"
)

func TestCustomErrorKeepsSentinelIdentity(t *testing.T) {
	err := NewCustomError(ErrCourseAlreadyExists, `course "cs101" already exists`)

	if !errors.Is(err, ErrCourseAlreadyExists) {
		t.Fatal("CustomError must unwrap to its sentinel")
	}
	if got := err.Error(); got != `course "cs101" already exists` {
		t.Fatalf("Error() = %q, want the per-site message", got)
	}
}

func TestCustomErrorFallsBackToWrappedText(t *testing.T) {
	err := NewCustomError(ErrUserNotFound, "")
	if got := err.Error(); got != ErrUserNotFound.Error() {
		t.Fatalf("Error() = %q, want %q", got, ErrUserNotFound.Error())
	}
}
