// Package registry implements the mangit registry engine: the single entry
// point for every mutation and query over the tracked repository set.
//
// Mutations run as lock, load, mutate in memory, atomic save. If the save
// fails the on-disk state is whatever the store guarantees (old or new
// complete snapshot) and the in-memory result is not committed. Queries
// load without the exclusive lock and tolerate a momentarily stale snapshot
// when writers run concurrently.
package registry

import (
	"sort"
	"strings"
	"time"

	"github.com/mangit-cli/mangit/internal/store"
)

// DefaultLockTimeout bounds how long a mutation waits for the registry lock.
const DefaultLockTimeout = 5 * time.Second

// Engine mediates all operations over one registry store.
type Engine struct {
	store       *store.FileStore
	lockTimeout time.Duration
	now         func() time.Time
}

// New returns an engine over s. A non-positive lockTimeout falls back to
// DefaultLockTimeout.
func New(s *store.FileStore, lockTimeout time.Duration) *Engine {
	if lockTimeout <= 0 {
		lockTimeout = DefaultLockTimeout
	}
	return &Engine{store: s, lockTimeout: lockTimeout, now: time.Now}
}

// Init creates the storage directory and an empty registry if none exists.
// Safe to call repeatedly. A corrupt store is surfaced, never overwritten.
func (e *Engine) Init() error {
	return e.store.WithLock(e.lockTimeout, func() error {
		reg, err := e.store.Load()
		if err != nil {
			return err
		}
		return e.store.Save(reg)
	})
}

// Add registers a new repository. The path is canonicalized before use as
// the registry key; adding a path that is already registered fails with an
// already-exists error rather than overwriting anything.
func (e *Engine) Add(path string, tags []string, description string) (*store.Record, error) {
	path, err := store.NormalizePath(path)
	if err != nil {
		return nil, err
	}
	normTags, err := store.NormalizeTags(tags)
	if err != nil {
		return nil, err
	}

	var rec *store.Record
	err = e.store.WithLock(e.lockTimeout, func() error {
		reg, err := e.store.Load()
		if err != nil {
			return err
		}
		if _, ok := reg.Repos[path]; ok {
			return store.NewError(store.KindAlreadyExists, path, nil)
		}
		rec = &store.Record{
			Path:        path,
			Tags:        normTags,
			CreatedAt:   e.now().Unix(),
			Description: description,
			Language:    store.DetectLanguage(path),
		}
		reg.Repos[path] = rec
		return e.store.Save(reg)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Delete removes a repository. Deleting an unknown path fails with
// not-found, so repeating a delete is never a silent no-op success.
func (e *Engine) Delete(path string) error {
	path, err := store.NormalizePath(path)
	if err != nil {
		return err
	}
	return e.store.WithLock(e.lockTimeout, func() error {
		reg, err := e.store.Load()
		if err != nil {
			return err
		}
		if _, ok := reg.Repos[path]; !ok {
			return store.NewError(store.KindNotFound, path, nil)
		}
		delete(reg.Repos, path)
		return e.store.Save(reg)
	})
}

// Update replaces the tag set of an existing repository, leaving its usage
// statistics untouched.
func (e *Engine) Update(path string, tags []string) (*store.Record, error) {
	path, err := store.NormalizePath(path)
	if err != nil {
		return nil, err
	}
	normTags, err := store.NormalizeTags(tags)
	if err != nil {
		return nil, err
	}

	var rec *store.Record
	err = e.store.WithLock(e.lockTimeout, func() error {
		reg, err := e.store.Load()
		if err != nil {
			return err
		}
		rec = reg.Repos[path]
		if rec == nil {
			return store.NewError(store.KindNotFound, path, nil)
		}
		rec.Tags = normTags
		return e.store.Save(reg)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Access records one use of a repository: access count up by one,
// last accessed set to now. This is the only usage-driven mutation.
func (e *Engine) Access(path string) (*store.Record, error) {
	path, err := store.NormalizePath(path)
	if err != nil {
		return nil, err
	}

	var rec *store.Record
	err = e.store.WithLock(e.lockTimeout, func() error {
		reg, err := e.store.Load()
		if err != nil {
			return err
		}
		rec = reg.Repos[path]
		if rec == nil {
			return store.NewError(store.KindNotFound, path, nil)
		}
		rec.Touch(e.now())
		return e.store.Save(reg)
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Reset clears the usage statistics of one repository, keeping its tags and
// creation time.
func (e *Engine) Reset(path string) error {
	path, err := store.NormalizePath(path)
	if err != nil {
		return err
	}
	return e.store.WithLock(e.lockTimeout, func() error {
		reg, err := e.store.Load()
		if err != nil {
			return err
		}
		rec := reg.Repos[path]
		if rec == nil {
			return store.NewError(store.KindNotFound, path, nil)
		}
		rec.ResetStats()
		return e.store.Save(reg)
	})
}

// ResetAll clears the usage statistics of every repository in one save.
// It returns the number of records reset.
func (e *Engine) ResetAll() (int, error) {
	var count int
	err := e.store.WithLock(e.lockTimeout, func() error {
		reg, err := e.store.Load()
		if err != nil {
			return err
		}
		for _, rec := range reg.Repos {
			rec.ResetStats()
		}
		count = len(reg.Repos)
		return e.store.Save(reg)
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

// SearchResult pairs a matching record with its frecency score at query time.
type SearchResult struct {
	Record *store.Record
	Score  float64
}

// Search returns the records matching query, ordered by descending frecency
// score with ties broken by path. No match is an empty slice, not an error.
func (e *Engine) Search(query string) ([]SearchResult, error) {
	reg, err := e.store.Load()
	if err != nil {
		return nil, err
	}
	now := e.now()
	results := make([]SearchResult, 0, len(reg.Repos))
	for _, rec := range reg.Repos {
		if rec.MatchesQuery(query) {
			results = append(results, SearchResult{Record: rec, Score: Score(rec, now)})
		}
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Record.Path < results[j].Record.Path
	})
	return results, nil
}

// Get returns the record for one repository, or not-found.
func (e *Engine) Get(path string) (*store.Record, error) {
	path, err := store.NormalizePath(path)
	if err != nil {
		return nil, err
	}
	reg, err := e.store.Load()
	if err != nil {
		return nil, err
	}
	rec := reg.Repos[path]
	if rec == nil {
		return nil, store.NewError(store.KindNotFound, path, nil)
	}
	return rec, nil
}

// List returns every record, filtered to those carrying all of tags when the
// filter is non-empty, ordered by path.
func (e *Engine) List(tags []string) ([]*store.Record, error) {
	reg, err := e.store.Load()
	if err != nil {
		return nil, err
	}
	records := make([]*store.Record, 0, len(reg.Repos))
	for _, rec := range reg.Repos {
		if rec.MatchesTags(tags) {
			records = append(records, rec)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].Path < records[j].Path
	})
	return records, nil
}

// Tags returns every tag in use with the number of repositories carrying
// it. Counting is case-insensitive; the first-seen casing is reported.
func (e *Engine) Tags() (map[string]int, error) {
	reg, err := e.store.Load()
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int)
	casing := make(map[string]string)
	for _, rec := range reg.Repos {
		for _, tag := range rec.Tags {
			key := strings.ToLower(tag)
			if _, ok := casing[key]; !ok {
				casing[key] = tag
			}
			counts[key]++
		}
	}
	out := make(map[string]int, len(counts))
	for key, n := range counts {
		out[casing[key]] = n
	}
	return out, nil
}
