// Package config provides the configuration loader for ahkbuild.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jeremyj563/vsts-ahk-build/internal/core/domain"
	"github.com/jeremyj563/vsts-ahk-build/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// SupportedVersion is the only Buildfile version understood by the loader.
const SupportedVersion = "1"

var errNegativeDuration = zerr.New("duration must not be negative")

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads domain.ConfigFileName from dir and applies it over the default
// settings. A missing file yields domain.DefaultSettings().
func (l *Loader) Load(dir string) (domain.Settings, error) {
	configPath := filepath.Join(dir, domain.ConfigFileName)

	var buildfile Buildfile
	found, err := readAndUnmarshalYAML(configPath, &buildfile)
	if err != nil {
		return domain.Settings{}, zerr.With(err, "path", configPath)
	}
	if !found {
		return domain.DefaultSettings(), nil
	}

	if buildfile.Version != "" && buildfile.Version != SupportedVersion {
		l.Logger.Warn(fmt.Sprintf("unknown version %q in %s, reading it as version %s",
			buildfile.Version, domain.ConfigFileName, SupportedVersion))
	}

	settings, err := buildfile.apply(domain.DefaultSettings())
	if err != nil {
		return domain.Settings{}, zerr.With(err, "path", configPath)
	}
	return settings, nil
}

// apply overlays the fields present in the Buildfile on base.
func (b *Buildfile) apply(base domain.Settings) (domain.Settings, error) {
	s := base.Clone()

	if b.Compiler != "" {
		s.Compiler = b.Compiler
	}
	if b.InputFlag != "" {
		s.InputFlag = b.InputFlag
	}
	if b.Args != nil {
		s.ExtraArgs = b.Args
	}

	if b.Env != nil {
		s.Environment = b.Env
	}

	if b.ArtifactGrace != "" {
		grace, err := time.ParseDuration(b.ArtifactGrace)
		if err != nil {
			return domain.Settings{}, zerr.With(errors.Join(domain.ErrConfigParseFailed, err),
				"field", "artifactGrace")
		}
		if grace < 0 {
			err := zerr.With(errors.Join(domain.ErrConfigParseFailed, errNegativeDuration), "field", "artifactGrace")
			return domain.Settings{}, zerr.With(err, "value", b.ArtifactGrace)
		}
		s.ArtifactGrace = grace
	}

	if b.Dependencies != nil {
		deps := make([]domain.Dependency, 0, len(*b.Dependencies))
		for i, dto := range *b.Dependencies {
			dep, err := domain.NewDependency(dto.Name, dto.URL, dto.Archive, dto.Files)
			if err != nil {
				return domain.Settings{}, zerr.With(err, "dependency_index", i)
			}
			deps = append(deps, dep)
		}
		s.Dependencies = deps
	}

	return s, nil
}

// readAndUnmarshalYAML decodes configPath into target. It reports false
// without error when the file does not exist.
func readAndUnmarshalYAML[T any](configPath string, target *T) (bool, error) {
	// #nosec G304 -- configPath is derived from the workspace directory
	configFile, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, errors.Join(domain.ErrConfigReadFailed, err)
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return false, errors.Join(domain.ErrConfigParseFailed, parseErr)
	}

	return true, nil
}
