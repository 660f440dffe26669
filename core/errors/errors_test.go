package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name     string
		err      *NotFoundError
		wantMsg  string
		wantBase error
	}{
		{
			name:     "with path",
			err:      &NotFoundError{Resource: "tree file", Path: "data/e100.conllu"},
			wantMsg:  "tree file not found: data/e100.conllu",
			wantBase: ErrNotFound,
		},
		{
			name:     "without path",
			err:      &NotFoundError{Resource: "analysis file"},
			wantMsg:  "analysis file not found",
			wantBase: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got, tt.wantMsg)
			}
			if got := tt.err.Unwrap(); !errors.Is(got, tt.wantBase) {
				t.Errorf("Unwrap() = %v, want %v", got, tt.wantBase)
			}
		})
	}

	t.Run("with underlying error", func(t *testing.T) {
		underlyingErr := fmt.Errorf("disk error")
		err := &NotFoundError{Resource: "tree file", Path: "x.conllu", Err: underlyingErr}
		if got := err.Error(); got != "tree file not found: x.conllu" {
			t.Errorf("Error() = %q", got)
		}
		if got := err.Unwrap(); got != underlyingErr {
			t.Errorf("Unwrap() = %v, want %v", got, underlyingErr)
		}
	})
}

func TestIOError(t *testing.T) {
	underlying := fmt.Errorf("permission denied")
	err := &IOError{Operation: "write", Path: "out.csv", Err: underlying}
	if got := err.Error(); got != "failed to write out.csv: permission denied" {
		t.Errorf("Error() = %q", got)
	}
	if err.Unwrap() != underlying {
		t.Errorf("Unwrap() = %v", err.Unwrap())
	}
}

func TestParseError(t *testing.T) {
	err := &ParseError{Format: "config", Path: "morphsync.yaml", Message: "bad level"}
	want := "failed to parse config at morphsync.yaml: bad level"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrInvalidInput) {
		t.Error("ParseError should unwrap to ErrInvalidInput")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should be nil")
	}
	base := errors.New("boom")
	wrapped := Wrap(base, "stage failed")
	if wrapped.Error() != "stage failed: boom" {
		t.Errorf("Wrap = %q", wrapped.Error())
	}
	if !errors.Is(wrapped, base) {
		t.Error("Wrap should preserve the error chain")
	}

	if Wrapf(nil, "x %d", 1) != nil {
		t.Error("Wrapf(nil) should be nil")
	}
	wrapped = Wrapf(base, "stage %s", "sync")
	if wrapped.Error() != "stage sync: boom" {
		t.Errorf("Wrapf = %q", wrapped.Error())
	}
}
