// Package shell provides the process executor adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/jeremyj563/vsts-ahk-build/internal/core/domain"
	"github.com/jeremyj563/vsts-ahk-build/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{
		logger: logger,
	}
}

// Execute runs the invocation and blocks until the process exits.
//
// Standard output is discarded. Standard error is logged line by line and
// copied to the telemetry vertex carried by ctx, if any.
// Environment overrides are applied on top of os.Environ().
func (e *Executor) Execute(ctx context.Context, inv domain.Invocation) error {
	if len(inv.Command) == 0 {
		return zerr.With(domain.ErrEmptyCommand, "name", inv.Name)
	}

	name := inv.Command[0]
	args := inv.Command[1:]

	cmdEnv := resolveEnvironment(os.Environ(), inv.Environment)
	executable := resolveExecutable(name, inv.WorkingDir)

	cmd := exec.CommandContext(ctx, executable, args...) //nolint:gosec // configured compiler command

	// exec.CommandContext sets Args[0] to the resolved path.
	// Preserve the name as configured.
	if len(cmd.Args) > 0 {
		cmd.Args[0] = name
	}

	if inv.WorkingDir != "" {
		cmd.Dir = inv.WorkingDir
	}
	cmd.Env = cmdEnv

	stderrLog := &logWriter{logger: e.logger}
	var stderr io.Writer = stderrLog
	if v, ok := ports.VertexFromContext(ctx); ok {
		stderr = io.MultiWriter(stderrLog, v.Stderr())
	}
	cmd.Stdout = io.Discard
	cmd.Stderr = stderr

	err := cmd.Run()
	_ = stderrLog.Close()
	if err != nil {
		exitCode := -1 // Unknown or signal
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}

		err = zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
		return zerr.With(err, "command", name)
	}

	return nil
}

// logWriter forwards complete lines to the logger as warnings.
// A trailing partial line is held until the next write or Close.
type logWriter struct {
	logger ports.Logger
	buf    []byte
}

func (w *logWriter) Write(p []byte) (n int, err error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}

		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	// Windows tools terminate lines with \r\n.
	msg := strings.TrimSuffix(string(line), "\r")
	if msg == "" {
		return
	}
	w.logger.Warn(msg)
}

// resolveEnvironment applies overrides on top of the system environment.
func resolveEnvironment(sysEnv []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(sysEnv)+len(overrides))
	for _, entry := range sysEnv {
		k, v, ok := strings.Cut(entry, "=")
		if ok {
			envMap[k] = v
		}
	}

	for k, v := range overrides {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}

// resolveExecutable picks the binary to run for name.
//
// A bare file name present in the working directory wins, since the compiler
// is commonly dropped next to the scripts. Otherwise name is returned for
// exec to resolve against PATH.
func resolveExecutable(name, workingDir string) string {
	if filepath.IsAbs(name) || workingDir == "" || filepath.Base(name) != name {
		return name
	}

	local := filepath.Join(workingDir, name)
	if info, err := os.Stat(local); err == nil && !info.IsDir() {
		return local
	}
	return name
}
