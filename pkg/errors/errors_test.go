package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidBlock, "block %q: width must be positive", "a")

	want := `INVALID_BLOCK: block "a": width must be positive`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if err.Cause != nil {
		t.Errorf("Cause = %v, want nil", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeStore, cause, "save snapshot %q", "demo")

	want := `STORE_ERROR: save snapshot "demo": disk full`
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause not reachable via errors.Is")
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeNotFound, "gone")

	if !Is(err, ErrCodeNotFound) {
		t.Error("Is = false for matching code")
	}
	if Is(err, ErrCodeStore) {
		t.Error("Is = true for different code")
	}
	if Is(stderrors.New("plain"), ErrCodeNotFound) {
		t.Error("Is = true for non-structured error")
	}
	if Is(nil, ErrCodeNotFound) {
		t.Error("Is = true for nil")
	}
}

func TestIsThroughWrapping(t *testing.T) {
	inner := New(ErrCodeSnapshotNotFound, "no snapshot %q", "demo")
	outer := fmt.Errorf("load: %w", inner)

	if !Is(outer, ErrCodeSnapshotNotFound) {
		t.Error("Is does not unwrap fmt.Errorf chains")
	}
	if got := GetCode(outer); got != ErrCodeSnapshotNotFound {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeSnapshotNotFound)
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidConfig, "bad")); got != ErrCodeInvalidConfig {
		t.Errorf("GetCode = %q, want %q", got, ErrCodeInvalidConfig)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode for plain error = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidInput, "name must not be empty")
	if got := UserMessage(err); got != "name must not be empty" {
		t.Errorf("UserMessage = %q", got)
	}

	plain := stderrors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage for plain error = %q", got)
	}
}
