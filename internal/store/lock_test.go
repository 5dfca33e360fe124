package store

import (
	"testing"
	"time"

	"github.com/gofrs/flock"
)

func TestWithLock_RunsFunction(t *testing.T) {
	s := setupTestStore(t)

	ran := false
	err := s.WithLock(time.Second, func() error {
		ran = true
		return nil
	})
	if err != nil {
		t.Fatalf("WithLock failed: %v", err)
	}
	if !ran {
		t.Error("expected function to run")
	}
}

func TestWithLock_ReleasesLock(t *testing.T) {
	s := setupTestStore(t)

	for i := 0; i < 2; i++ {
		if err := s.WithLock(time.Second, func() error { return nil }); err != nil {
			t.Fatalf("WithLock attempt %d failed: %v", i+1, err)
		}
	}
}

func TestWithLock_TimesOut(t *testing.T) {
	s := setupTestStore(t)

	// Hold the lock from the outside, as a concurrent invocation would.
	holder := flock.New(s.Path() + ".lock")
	if err := holder.Lock(); err != nil {
		t.Fatalf("failed to pre-acquire lock: %v", err)
	}
	defer func() { _ = holder.Unlock() }()

	ran := false
	err := s.WithLock(150*time.Millisecond, func() error {
		ran = true
		return nil
	})
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if KindOf(err) != KindLocked {
		t.Errorf("expected locked kind, got %q", KindOf(err))
	}
	if ran {
		t.Error("function must not run without the lock")
	}
}
