// Package fs implements file system checks and digests.
package fs

import (
	"os"
	"path/filepath"

	"github.com/jeremyj563/vsts-ahk-build/internal/core/domain"
	"github.com/jeremyj563/vsts-ahk-build/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Verifier = (*Verifier)(nil)

// Verifier provides functionality to verify the existence of files.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// VerifyOutputs checks if all output files exist in the given root directory.
// It returns true if all outputs exist, false otherwise.
func (v *Verifier) VerifyOutputs(root string, outputs []string) (bool, error) {
	missing, err := v.MissingOutputs(root, outputs)
	if err != nil {
		return false, err
	}
	return len(missing) == 0, nil
}

// MissingOutputs returns the outputs that do not exist in root, in the order given.
// Directories do not count as existing outputs.
func (v *Verifier) MissingOutputs(root string, outputs []string) ([]string, error) {
	var missing []string
	for _, output := range outputs {
		path := filepath.Join(root, output)
		info, err := os.Stat(path)
		if err != nil {
			if os.IsNotExist(err) {
				missing = append(missing, output)
				continue
			}
			return nil, zerr.With(zerr.Wrap(err, "failed to stat output"), "path", path)
		}
		if info.IsDir() {
			missing = append(missing, output)
		}
	}
	return missing, nil
}

// MissingPatterns returns the patterns that match no file in root, in the
// order given. Patterns without glob metacharacters are checked literally.
// Patterns are matched against entry names only, so root may contain
// metacharacters.
func (v *Verifier) MissingPatterns(root string, patterns []string) ([]string, error) {
	var (
		missing []string
		entries []os.DirEntry
		listed  bool
	)

	for _, pattern := range patterns {
		if !domain.IsPattern(pattern) {
			m, err := v.MissingOutputs(root, []string{pattern})
			if err != nil {
				return nil, err
			}
			missing = append(missing, m...)
			continue
		}

		if !listed {
			var err error
			entries, err = os.ReadDir(root)
			if err != nil && !os.IsNotExist(err) {
				return nil, zerr.With(zerr.Wrap(err, "failed to list outputs"), "path", root)
			}
			listed = true
		}

		found, err := matchesFile(entries, pattern)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "invalid output pattern"), "pattern", pattern)
		}
		if !found {
			missing = append(missing, pattern)
		}
	}
	return missing, nil
}

func matchesFile(entries []os.DirEntry, pattern string) (bool, error) {
	if _, err := filepath.Match(pattern, ""); err != nil {
		return false, err
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if ok, _ := filepath.Match(pattern, e.Name()); ok {
			return true, nil
		}
	}
	return false, nil
}
