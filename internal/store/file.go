package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore loads and saves the registry document at a fixed path.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the registry document at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the location of the registry document.
func (s *FileStore) Path() string { return s.path }

// Load reads the full registry. A missing file is first-run semantics: an
// empty registry at the current format version. Unparseable content or an
// unknown format version is reported as corrupt, never silently dropped.
func (s *FileStore) Load() (*Registry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewRegistry(), nil
	}
	if err != nil {
		return nil, NewError(KindIOFailure, s.path, err)
	}
	var reg Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, NewError(KindCorrupt, s.path, err)
	}
	if reg.FormatVersion != FormatVersion {
		return nil, NewError(KindCorrupt, s.path, fmt.Errorf("unknown format_version %d", reg.FormatVersion))
	}
	if reg.Repos == nil {
		reg.Repos = make(map[string]*Record)
	}
	for path, rec := range reg.Repos {
		rec.Path = path
	}
	return &reg, nil
}

// Save writes the full registry to a temp file in the target directory and
// renames it into place, so an interrupted write leaves either the old or
// the new complete document on disk, never a partial one.
func (s *FileStore) Save(reg *Registry) error {
	data, err := json.MarshalIndent(reg, "", "  ")
	if err != nil {
		return NewError(KindIOFailure, s.path, err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return NewError(KindIOFailure, s.path, err)
	}

	tmp, err := os.CreateTemp(dir, ".repos.json.tmp.*")
	if err != nil {
		return NewError(KindIOFailure, s.path, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return NewError(KindIOFailure, s.path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return NewError(KindIOFailure, s.path, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return NewError(KindIOFailure, s.path, err)
	}
	return nil
}
