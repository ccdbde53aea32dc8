package domain

import (
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

const (
	// ConfigFileName is the optional per-workspace configuration file.
	ConfigFileName = "ahkbuild.yaml"

	// StateFileName is the build info receipt kept next to the script.
	StateFileName = ".ahkbuild_state.json"

	// LogExt is the extension of the default log file.
	LogExt = ".log"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// ExecPerm is the permission given to extracted binaries (rwxr-xr-x).
	ExecPerm = 0o755
)

// Workspace is the directory a run operates in. The downloaded archive, the
// extracted dependency files, the log, and the build artifact all live there.
type Workspace struct {
	// Dir is the absolute directory containing the script.
	Dir string
	// Script is the absolute path of the input script.
	Script string
	// LogPath is the absolute path of the log file.
	LogPath string
}

// NewWorkspace derives a Workspace from a script path and an optional log path.
// An empty logPath defaults to the script's base name with LogExt.
func NewWorkspace(script, logPath string) (Workspace, error) {
	if strings.TrimSpace(script) == "" {
		return Workspace{}, ErrNoScriptSpecified
	}

	abs, err := filepath.Abs(script)
	if err != nil {
		return Workspace{}, zerr.With(zerr.Wrap(err, "failed to resolve script path"), "script", script)
	}

	ws := Workspace{
		Dir:    filepath.Dir(abs),
		Script: abs,
	}

	if logPath == "" {
		ws.LogPath = DefaultLogPath(abs)
		return ws, nil
	}

	ws.LogPath, err = filepath.Abs(logPath)
	if err != nil {
		return Workspace{}, zerr.With(zerr.Wrap(err, "failed to resolve log path"), "log", logPath)
	}
	return ws, nil
}

// DefaultLogPath returns the log file path derived from a script path.
func DefaultLogPath(script string) string {
	return strings.TrimSuffix(script, filepath.Ext(script)) + LogExt
}

// Name returns the script's base name without extension.
func (w Workspace) Name() string {
	base := filepath.Base(w.Script)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Path joins name onto the workspace directory.
func (w Workspace) Path(name string) string {
	return filepath.Join(w.Dir, name)
}

// Request returns the BuildRequest for the workspace's script.
func (w Workspace) Request() BuildRequest {
	return BuildRequest{Script: w.Script}
}
