package apperr

import (
	"errors"
	"fmt"
	"io"
	"testing"
)

var (
	errSample = &Error{Message: "duration must be between %v and %v"}
	errOther  = &Error{Message: "other"}
)

func TestErrorIs(t *testing.T) {
	formatted := errSample.Fmt(1, 2)

	if formatted.Error() != "duration must be between 1 and 2" {
		t.Fatalf("unexpected message: %s", formatted.Error())
	}

	if !errors.Is(formatted, errSample) {
		t.Error("formatted error should match its sentinel")
	}

	if errors.Is(formatted, errOther) {
		t.Error("formatted error should not match an unrelated sentinel")
	}

	wrapped := fmt.Errorf("loading config: %w", formatted)
	if !errors.Is(wrapped, errSample) {
		t.Error("sentinel should be found through fmt.Errorf wrapping")
	}
}

func TestErrorWrap(t *testing.T) {
	err := errOther.Wrap(io.EOF)

	if !errors.Is(err, io.EOF) {
		t.Error("wrapped cause should be reachable")
	}

	if !errors.Is(err, errOther) {
		t.Error("wrapped error should match its sentinel")
	}

	if err.Error() != "other: EOF" {
		t.Errorf("unexpected message: %s", err.Error())
	}
}
