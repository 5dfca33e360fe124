// Package store implements the persistent repository registry for mangit.
//
// The registry is a single JSON document (repos.json) mapping canonical
// repository paths to their tags and usage statistics. Shell tooling is
// allowed to read the file directly, so its field names and types are a
// stability contract. Saves are atomic (temp file + rename) and mutating
// callers hold an exclusive advisory lock on a sibling lock file to
// serialize concurrent invocations.
package store

import "time"

// FormatVersion is the registry document version this build reads and writes.
const FormatVersion = 1

// Record tracks one registered repository. Timestamps are epoch seconds so
// the persisted form is an unambiguous instant regardless of timezone.
type Record struct {
	Path         string   `json:"-"`
	Tags         []string `json:"tags"`
	AccessCount  int      `json:"access_count"`
	LastAccessed *int64   `json:"last_accessed"`
	CreatedAt    int64    `json:"created_at"`
	Description  string   `json:"description,omitempty"`
	Language     string   `json:"language,omitempty"`
}

// LastAccessedTime returns the last access instant, or the zero time if the
// record has never been accessed.
func (r *Record) LastAccessedTime() time.Time {
	if r.LastAccessed == nil {
		return time.Time{}
	}
	return time.Unix(*r.LastAccessed, 0)
}

// Touch records one access at now. The access count only ever grows;
// last_accessed never lands before created_at.
func (r *Record) Touch(now time.Time) {
	r.AccessCount++
	ts := now.Unix()
	if ts < r.CreatedAt {
		ts = r.CreatedAt
	}
	r.LastAccessed = &ts
}

// ResetStats clears the usage statistics, leaving tags and created_at intact.
func (r *Record) ResetStats() {
	r.AccessCount = 0
	r.LastAccessed = nil
}

// Registry is the full set of tracked repositories, keyed by canonical path.
type Registry struct {
	FormatVersion int                `json:"format_version"`
	Repos         map[string]*Record `json:"repos"`
}

// NewRegistry returns an empty registry at the current format version.
func NewRegistry() *Registry {
	return &Registry{
		FormatVersion: FormatVersion,
		Repos:         make(map[string]*Record),
	}
}
