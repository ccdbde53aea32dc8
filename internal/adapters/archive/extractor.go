// Package archive extracts dependency files from zip archives.
package archive

import (
	"archive/zip"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jeremyj563/vsts-ahk-build/internal/core/domain"
	"github.com/jeremyj563/vsts-ahk-build/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Extractor = (*Extractor)(nil)

// Extractor implements ports.Extractor for zip archives.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract writes the single entry of archivePath matching pattern to
// outputDir, named after the entry's base name, and returns the written path.
//
// pattern is compared against each entry's full name and base name, first
// literally and then as a path.Match glob. Exactly one entry must match.
func (e *Extractor) Extract(archivePath, pattern, outputDir string, overwrite bool) (string, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open archive"), "archive", archivePath)
	}
	defer r.Close() //nolint:errcheck // Read-only handle

	entry, err := matchEntry(r.File, pattern)
	if err != nil {
		return "", zerr.With(err, "archive", archivePath)
	}

	dest := filepath.Join(outputDir, path.Base(entryName(entry)))
	if !overwrite {
		if _, statErr := os.Stat(dest); statErr == nil {
			return "", zerr.With(domain.ErrOutputExists, "path", dest)
		}
	}

	if err := writeEntry(entry, dest); err != nil {
		err = zerr.With(zerr.Wrap(err, "failed to extract entry"), "entry", entry.Name)
		return "", zerr.With(err, "path", dest)
	}

	if _, err := os.Stat(dest); err != nil {
		return "", zerr.With(zerr.Wrap(err, "extracted file missing"), "path", dest)
	}

	return dest, nil
}

// matchEntry returns the only non-directory entry matching pattern.
func matchEntry(files []*zip.File, pattern string) (*zip.File, error) {
	if _, err := path.Match(pattern, ""); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "invalid entry pattern"), "pattern", pattern)
	}

	var matches []*zip.File
	for _, f := range files {
		if f.FileInfo().IsDir() {
			continue
		}
		if entryMatches(entryName(f), pattern) {
			matches = append(matches, f)
		}
	}

	switch len(matches) {
	case 0:
		return nil, zerr.With(domain.ErrEntryNotFound, "pattern", pattern)
	case 1:
		return matches[0], nil
	default:
		names := make([]string, len(matches))
		for i, m := range matches {
			names[i] = m.Name
		}
		err := zerr.With(domain.ErrAmbiguousEntry, "pattern", pattern)
		return nil, zerr.With(err, "matches", strings.Join(names, ", "))
	}
}

func entryMatches(name, pattern string) bool {
	base := path.Base(name)
	if name == pattern || base == pattern {
		return true
	}
	// The pattern was validated by matchEntry, so Match cannot fail here.
	if ok, _ := path.Match(pattern, name); ok {
		return true
	}
	ok, _ := path.Match(pattern, base)
	return ok
}

// entryName normalizes archives written with Windows separators.
func entryName(f *zip.File) string {
	return strings.ReplaceAll(f.Name, `\`, "/")
}

// writeEntry copies the entry to a temp file next to dest and renames it into place.
func writeEntry(f *zip.File, dest string) (err error) {
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close() //nolint:errcheck // Read-only handle

	tmp, err := os.CreateTemp(filepath.Dir(dest), ".extract-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	// Clean up temp file on error
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err = io.Copy(tmp, rc); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	if err = os.Chmod(tmpName, entryPerm(f.Mode())); err != nil {
		return err
	}

	return os.Rename(tmpName, dest)
}

func entryPerm(mode fs.FileMode) fs.FileMode {
	if mode.Perm()&0o111 != 0 {
		return domain.ExecPerm
	}
	return domain.FilePerm
}
