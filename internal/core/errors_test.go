package core

import (
	"errors"
	"fmt"
	"testing"
)

func TestStageErrors_ExitCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"config", NewConfigError("bad flag"), ExitConfigError},
		{"resolution", &ResolutionError{Msg: "no base"}, ExitResolutionError},
		{"retrieval", &RetrievalError{Msg: "api down"}, ExitRetrievalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coder, ok := tt.err.(interface{ ExitCode() int })
			if !ok {
				t.Fatalf("%T does not implement ExitCode()", tt.err)
			}
			if got := coder.ExitCode(); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStageErrors_WrappingPreservesType(t *testing.T) {
	inner := &ResolutionError{Msg: "no merge base", Hint: "increase clone depth"}
	wrapped := fmt.Errorf("resolving range: %w", inner)

	if !IsResolutionError(wrapped) {
		t.Error("IsResolutionError() = false for wrapped error")
	}
	if IsRetrievalError(wrapped) {
		t.Error("IsRetrievalError() = true for resolution error")
	}
	if got := HintForError(wrapped); got != "increase clone depth" {
		t.Errorf("HintForError() = %q", got)
	}
}

func TestStageErrors_ErrorStrings(t *testing.T) {
	cause := errors.New("exit status 128")

	re := &ResolutionError{Msg: "fetching origin/main", Err: cause}
	if got, want := re.Error(), "fetching origin/main: exit status 128"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(re, cause) {
		t.Error("errors.Is() did not find wrapped cause")
	}

	bare := &RetrievalError{Msg: "empty compare payload"}
	if got := bare.Error(); got != "empty compare payload" {
		t.Errorf("Error() = %q", got)
	}
}

func TestErrorCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"config", NewConfigError("x"), ErrCodeConfigError},
		{"resolution", &ResolutionError{Msg: "x"}, ErrCodeResolutionError},
		{"retrieval", &RetrievalError{Msg: "x"}, ErrCodeRetrievalError},
		{"unknown", errors.New("x"), ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorCodeForError(tt.err); got != tt.want {
				t.Errorf("ErrorCodeForError() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestHintForError_NoHint(t *testing.T) {
	if got := HintForError(errors.New("plain")); got != "" {
		t.Errorf("HintForError() = %q, want empty", got)
	}
}
