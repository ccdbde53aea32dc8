// Package cas implements build info storage.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/jeremyj563/vsts-ahk-build/internal/core/domain"
	"github.com/jeremyj563/vsts-ahk-build/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildInfoStore = (*Store)(nil)

// Store implements ports.BuildInfoStore using a flat JSON file per workspace
// directory, keyed by script file name.
type Store struct {
	mu sync.Mutex
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the build info recorded for script in dir.
// It returns nil without error when nothing has been recorded.
func (s *Store) Get(dir, script string) (*domain.BuildInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := load(statePath(dir))
	if err != nil {
		return nil, err
	}

	info, ok := entries[filepath.Base(script)]
	if !ok {
		return nil, nil
	}
	return &info, nil
}

// Put records info for its script in dir, replacing any earlier entry.
func (s *Store) Put(dir string, info domain.BuildInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := statePath(dir)
	entries, err := load(path)
	if err != nil {
		return err
	}

	entries[filepath.Base(info.Script)] = info
	return save(path, entries)
}

func statePath(dir string) string {
	return filepath.Join(filepath.Clean(dir), domain.StateFileName)
}

func load(path string) (map[string]domain.BuildInfo, error) {
	entries := make(map[string]domain.BuildInfo)

	//nolint:gosec // Path is derived from the workspace directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return entries, nil
		}
		return nil, zerr.With(errors.Join(domain.ErrStoreReadFailed, err), "path", path)
	}

	if len(data) == 0 {
		return entries, nil
	}

	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, zerr.With(errors.Join(domain.ErrStoreUnmarshalFailed, err), "path", path)
	}

	return entries, nil
}

func save(path string, entries map[string]domain.BuildInfo) (err error) {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return errors.Join(domain.ErrStoreMarshalFailed, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".ahkbuild_state-*")
	if err != nil {
		return zerr.With(errors.Join(domain.ErrStoreWriteFailed, err), "path", path)
	}
	tmpName := tmp.Name()

	// Clean up temp file on error
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(errors.Join(domain.ErrStoreWriteFailed, err), "path", path)
	}
	if err = tmp.Close(); err != nil {
		return zerr.With(errors.Join(domain.ErrStoreWriteFailed, err), "path", path)
	}
	if err = os.Chmod(tmpName, domain.FilePerm); err != nil {
		return zerr.With(errors.Join(domain.ErrStoreWriteFailed, err), "path", path)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return zerr.With(errors.Join(domain.ErrStoreWriteFailed, err), "path", path)
	}

	return nil
}
