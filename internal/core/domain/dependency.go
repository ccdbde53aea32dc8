package domain

import (
	"errors"
	"path"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

const (
	// DefaultDependencyName is the label of the packer the compiler calls into.
	DefaultDependencyName = "MPRESS"

	// DefaultDependencyURL is where the packer archive is published.
	DefaultDependencyURL = "https://www.autohotkey.com/mpress/mpress.219.zip"

	// DefaultDependencyArchive is the local name of the downloaded archive.
	DefaultDependencyArchive = "mpress.219.zip"

	// DefaultDependencyFile is the file the compiler expects next to the script.
	DefaultDependencyFile = "mpress.exe"
)

// Dependency describes a named external dependency that is fetched as an
// archive and unpacked into the workspace. It is immutable once constructed.
type Dependency struct {
	name          string
	url           string
	archiveName   string
	requiredFiles []string
}

// NewDependency validates and returns a Dependency.
//
// The archive name must be a plain file name, since it lives directly in the
// workspace directory. Required files are plain file names or glob patterns
// resolving to a single archive entry.
func NewDependency(name, url, archiveName string, requiredFiles []string) (Dependency, error) {
	switch {
	case strings.TrimSpace(name) == "":
		return Dependency{}, invalidDependency("empty name")
	case strings.TrimSpace(url) == "":
		return Dependency{}, zerr.With(invalidDependency("empty url"), "dependency", name)
	case len(requiredFiles) == 0:
		return Dependency{}, zerr.With(invalidDependency("no required files"), "dependency", name)
	}

	if !isPlainFileName(archiveName) || IsPattern(archiveName) {
		err := zerr.With(invalidDependency("archive name must be a plain file name"), "dependency", name)
		return Dependency{}, zerr.With(err, "archive", archiveName)
	}

	for _, file := range requiredFiles {
		if !isPlainFileName(file) {
			err := zerr.With(invalidDependency("required file must be a plain file name"), "dependency", name)
			return Dependency{}, zerr.With(err, "file", file)
		}
		if _, err := path.Match(file, ""); err != nil {
			err := zerr.With(invalidDependency("required file is a malformed pattern"), "dependency", name)
			return Dependency{}, zerr.With(err, "file", file)
		}
	}

	return Dependency{
		name:          name,
		url:           url,
		archiveName:   archiveName,
		requiredFiles: slices.Clone(requiredFiles),
	}, nil
}

// DefaultDependency returns the packer dependency used when no config overrides it.
func DefaultDependency() Dependency {
	return Dependency{
		name:          DefaultDependencyName,
		url:           DefaultDependencyURL,
		archiveName:   DefaultDependencyArchive,
		requiredFiles: []string{DefaultDependencyFile},
	}
}

// Name returns the human-readable label.
func (d Dependency) Name() string { return d.name }

// URL returns the archive source location.
func (d Dependency) URL() string { return d.url }

// ArchiveName returns the local file name given to the downloaded archive.
func (d Dependency) ArchiveName() string { return d.archiveName }

// RequiredFiles returns a copy of the files expected after resolution, in order.
func (d Dependency) RequiredFiles() []string { return slices.Clone(d.requiredFiles) }

// String implements fmt.Stringer.
func (d Dependency) String() string {
	return d.name + " (" + strings.Join(d.requiredFiles, ", ") + ")"
}

// IsPattern reports whether name contains glob metacharacters.
func IsPattern(name string) bool {
	return strings.ContainsAny(name, "*?[")
}

func invalidDependency(reason string) error {
	return errors.Join(ErrInvalidDependency, zerr.New(reason))
}

func isPlainFileName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}
