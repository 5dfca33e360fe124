package store

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorMessage_IncludesPath(t *testing.T) {
	err := NewError(KindNotFound, "/p/a", nil)
	if !strings.Contains(err.Error(), "/p/a") {
		t.Errorf("expected message to name the path, got %q", err.Error())
	}
}

func TestKindOf_Wrapped(t *testing.T) {
	err := fmt.Errorf("while deleting: %w", NewError(KindNotFound, "/p/a", nil))
	if KindOf(err) != KindNotFound {
		t.Errorf("expected not found through wrapping, got %q", KindOf(err))
	}
	if KindOf(errors.New("plain")) != "" {
		t.Error("expected empty kind for plain error")
	}
}

func TestExitCode(t *testing.T) {
	if code := ExitCode(nil); code != 0 {
		t.Errorf("expected 0 for nil error, got %d", code)
	}
	if code := ExitCode(errors.New("plain")); code != 1 {
		t.Errorf("expected 1 for unclassified error, got %d", code)
	}

	kinds := []Kind{KindNotFound, KindAlreadyExists, KindInvalidInput, KindCorrupt, KindIOFailure, KindLocked}
	seen := make(map[int]Kind)
	for _, kind := range kinds {
		code := ExitCode(NewError(kind, "/p", nil))
		if code <= 1 {
			t.Errorf("kind %q should map to a dedicated code, got %d", kind, code)
		}
		if prev, ok := seen[code]; ok {
			t.Errorf("kinds %q and %q share exit code %d", prev, kind, code)
		}
		seen[code] = kind
	}
}
