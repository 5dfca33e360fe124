package registry

import (
	"math"
	"time"

	"github.com/mangit-cli/mangit/internal/store"
)

// frecencyHalfLife is how long an access takes to lose half its weight.
const frecencyHalfLife = 7 * 24 * time.Hour

// Score ranks a record by frequency and recency combined: the access count
// weighted by an exponential decay of the time since the last access. The
// weight is 1 at zero elapsed time and strictly decreases toward (but never
// reaches) zero, so a recently touched repo can outrank a stale but busy
// one while a frequently used repo never collapses to the never-used floor.
// Records with no recorded access score a flat zero.
func Score(rec *store.Record, now time.Time) float64 {
	if rec.AccessCount == 0 || rec.LastAccessed == nil {
		return 0
	}
	elapsed := now.Sub(rec.LastAccessedTime())
	if elapsed < 0 {
		elapsed = 0
	}
	return float64(rec.AccessCount) * math.Exp2(-float64(elapsed)/float64(frecencyHalfLife))
}
