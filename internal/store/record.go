package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// NormalizePath canonicalizes a user-supplied repository path for use as a
// registry key: absolute, cleaned, trailing separators stripped.
func NormalizePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", NewError(KindInvalidInput, path, errors.New("path must not be empty"))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", NewError(KindInvalidInput, path, err)
	}
	return abs, nil
}

// NormalizeTags trims whitespace, drops empty entries, and dedupes
// case-insensitively while preserving the case of the first occurrence.
// Tags containing separators are rejected as malformed.
func NormalizeTags(tags []string) ([]string, error) {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if strings.ContainsAny(tag, ",\n") {
			return nil, NewError(KindInvalidInput, tag, errors.New("tag must not contain commas or newlines"))
		}
		key := strings.ToLower(tag)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, tag)
	}
	return out, nil
}

// MatchesQuery reports whether query is a case-insensitive substring of any
// tag, the path, the description, or the detected language. An empty query
// matches every record.
func (r *Record) MatchesQuery(query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(r.Path), q) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	if strings.Contains(strings.ToLower(r.Description), q) {
		return true
	}
	return strings.Contains(strings.ToLower(r.Language), q)
}

// MatchesTags reports whether the record carries every given tag
// (case-insensitive exact match). An empty filter matches everything.
func (r *Record) MatchesTags(tags []string) bool {
	for _, want := range tags {
		found := false
		for _, have := range r.Tags {
			if strings.EqualFold(have, want) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

var languageMarkers = []struct {
	file     string
	language string
}{
	{"Cargo.toml", "Rust"},
	{"package.json", "JavaScript/TypeScript"},
	{"go.mod", "Go"},
	{"pom.xml", "Java"},
	{"build.gradle", "Java"},
	{"requirements.txt", "Python"},
	{"setup.py", "Python"},
	{"CMakeLists.txt", "C/C++"},
}

// DetectLanguage guesses the project language from well-known marker files.
// Returns "" when nothing matches or the path is unreadable.
func DetectLanguage(path string) string {
	for _, m := range languageMarkers {
		if _, err := os.Stat(filepath.Join(path, m.file)); err == nil {
			return m.language
		}
	}
	return ""
}

// IsGitRepo reports whether path contains a .git directory.
func IsGitRepo(path string) bool {
	fi, err := os.Stat(filepath.Join(path, ".git"))
	return err == nil && fi.IsDir()
}
