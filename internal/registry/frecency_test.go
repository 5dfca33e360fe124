package registry

import (
	"testing"
	"time"

	"github.com/mangit-cli/mangit/internal/store"
)

func recordAccessedAt(count int, accessed time.Time) *store.Record {
	ts := accessed.Unix()
	return &store.Record{
		Tags:         []string{"x"},
		AccessCount:  count,
		LastAccessed: &ts,
		CreatedAt:    accessed.Add(-time.Hour).Unix(),
	}
}

func TestScore_NeverAccessedIsZero(t *testing.T) {
	now := time.Unix(1700000000, 0)
	rec := &store.Record{AccessCount: 0, CreatedAt: now.Unix()}
	if got := Score(rec, now); got != 0 {
		t.Errorf("expected zero score for unused repo, got %v", got)
	}
}

func TestScore_FullWeightAtZeroElapsed(t *testing.T) {
	now := time.Unix(1700000000, 0)
	rec := recordAccessedAt(5, now)
	if got := Score(rec, now); got != 5 {
		t.Errorf("expected score 5 at zero elapsed, got %v", got)
	}
}

func TestScore_MonotonicInRecency(t *testing.T) {
	now := time.Unix(1700000000, 0)
	recent := recordAccessedAt(5, now.Add(-time.Hour))
	stale := recordAccessedAt(5, now.Add(-30*24*time.Hour))

	if Score(recent, now) <= Score(stale, now) {
		t.Errorf("more recent access must score higher: recent=%v stale=%v",
			Score(recent, now), Score(stale, now))
	}

	same := recordAccessedAt(5, now.Add(-time.Hour))
	if Score(recent, now) != Score(same, now) {
		t.Error("equal elapsed time must score equally")
	}
}

func TestScore_MonotonicInCount(t *testing.T) {
	now := time.Unix(1700000000, 0)
	few := recordAccessedAt(2, now.Add(-time.Hour))
	many := recordAccessedAt(9, now.Add(-time.Hour))

	if Score(many, now) <= Score(few, now) {
		t.Error("higher access count must score higher at equal recency")
	}
}

func TestScore_ZeroAccessFloor(t *testing.T) {
	now := time.Unix(1700000000, 0)
	unused := &store.Record{AccessCount: 0, CreatedAt: now.Add(-time.Minute).Unix()}
	// Even a single access from years ago beats a never-used repo.
	old := recordAccessedAt(1, now.Add(-3*365*24*time.Hour))

	if Score(old, now) <= Score(unused, now) {
		t.Errorf("accessed repo must outrank unused one: old=%v unused=%v",
			Score(old, now), Score(unused, now))
	}
}

func TestScore_FutureAccessClampsToFullWeight(t *testing.T) {
	now := time.Unix(1700000000, 0)
	rec := recordAccessedAt(3, now.Add(time.Hour))
	if got := Score(rec, now); got != 3 {
		t.Errorf("expected clamped score 3, got %v", got)
	}
}
