package domain

import (
	"maps"
	"slices"
	"time"
)

const (
	// DefaultCompiler is the vendor compiler invoked for each build.
	DefaultCompiler = "Ahk2Exe.exe"

	// DefaultInputFlag is the flag that precedes the script path.
	DefaultInputFlag = "/in"

	// DefaultArtifactGrace bounds how long to wait for the artifact after the compiler exits.
	DefaultArtifactGrace = 3 * time.Second
)

// Settings controls how a workspace is built.
type Settings struct {
	Compiler      string
	InputFlag     string
	ExtraArgs     []string
	ArtifactGrace time.Duration
	// Environment holds variables set for the compiler on top of the current environment.
	Environment  map[string]string
	Dependencies []Dependency
}

// DefaultSettings returns the settings used when no config file is present.
func DefaultSettings() Settings {
	return Settings{
		Compiler:      DefaultCompiler,
		InputFlag:     DefaultInputFlag,
		ArtifactGrace: DefaultArtifactGrace,
		Dependencies:  []Dependency{DefaultDependency()},
	}
}

// CompileCommand returns the compiler argv for a script.
func (s Settings) CompileCommand(script string) []string {
	cmd := make([]string, 0, len(s.ExtraArgs)+3)
	cmd = append(cmd, s.Compiler)
	cmd = append(cmd, s.ExtraArgs...)
	return append(cmd, s.InputFlag, script)
}

// Clone returns a deep copy of the settings.
func (s Settings) Clone() Settings {
	s.ExtraArgs = slices.Clone(s.ExtraArgs)
	s.Environment = maps.Clone(s.Environment)
	s.Dependencies = slices.Clone(s.Dependencies)
	return s
}
