// Package app implements the application layer for ahkbuild.
package app

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jeremyj563/vsts-ahk-build/internal/core/domain"
	"github.com/jeremyj563/vsts-ahk-build/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	resolver     ports.DependencyResolver
	builder      ports.Builder
	store        ports.BuildInfoStore
	logger       ports.Logger
	telemetry    ports.Telemetry
	stdout       io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	resolver ports.DependencyResolver,
	builder ports.Builder,
	store ports.BuildInfoStore,
	log ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		configLoader: loader,
		resolver:     resolver,
		builder:      builder,
		store:        store,
		logger:       log,
		telemetry:    telemetry,
		stdout:       os.Stdout,
	}
}

// WithStdout sets the console writer the log is mirrored to.
// This is primarily used for testing to capture output.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// RunOptions configuration for the Run and Resolve methods.
type RunOptions struct {
	// Script is the path of the script to compile.
	Script string
	// LogPath overrides the log file location. Empty derives it from Script.
	LogPath string
	// NoDeps skips dependency resolution.
	NoDeps bool
}

// Run ensures the dependencies of opts.Script and compiles it.
//
// The returned error carries the kind that domain.ExitCode maps to the
// process exit code. The log file is flushed and closed before Run returns.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	return a.session(ctx, opts, func(ctx context.Context, ws domain.Workspace, settings domain.Settings) error {
		if opts.NoDeps {
			a.logger.Info("dependency resolution skipped")
		} else if err := a.ensureDependencies(ctx, ws, settings); err != nil {
			return err
		}

		return a.build(ctx, ws, settings)
	})
}

// Resolve only ensures the dependencies of opts.Script.
func (a *App) Resolve(ctx context.Context, opts RunOptions) error {
	return a.session(ctx, opts, a.ensureDependencies)
}

type step func(ctx context.Context, ws domain.Workspace, settings domain.Settings) error

// session opens the workspace log, emits the start and finish banners around
// fn, and closes the log afterwards.
func (a *App) session(ctx context.Context, opts RunOptions, fn step) (err error) {
	ws, err := domain.NewWorkspace(opts.Script, opts.LogPath)
	if err != nil {
		a.Finish(err)
		return err
	}

	closeLog, err := a.openLog(ws.LogPath)
	if err != nil {
		a.Finish(err)
		return err
	}
	defer closeLog()

	a.logger.Event("Starting")
	defer func() {
		if closeErr := a.telemetry.Close(); closeErr != nil {
			a.logger.Warn(fmt.Sprintf("failed to close telemetry: %v", closeErr))
		}
		a.Finish(err)
	}()

	if _, statErr := os.Stat(ws.Script); statErr != nil {
		return zerr.With(domain.ErrScriptNotFound, "script", ws.Script)
	}

	settings, err := a.configLoader.Load(ws.Dir)
	if err != nil {
		return zerr.Wrap(err, "failed to load configuration")
	}

	return fn(ctx, ws, settings)
}

func (a *App) ensureDependencies(ctx context.Context, ws domain.Workspace, settings domain.Settings) error {
	for _, dep := range settings.Dependencies {
		if err := a.resolver.Ensure(ctx, ws, dep); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) build(ctx context.Context, ws domain.Workspace, settings domain.Settings) error {
	previous, err := a.store.Get(ws.Dir, ws.Script)
	if err != nil {
		a.logger.Warn(fmt.Sprintf("failed to read previous build info: %v", err))
	}

	info, err := a.builder.Build(ctx, ws, settings)
	if err != nil {
		return err
	}

	if previous != nil && previous.ArtifactHash == info.ArtifactHash {
		a.logger.Info(fmt.Sprintf("artifact unchanged since %s", previous.Timestamp.Format(time.RFC3339)))
	}

	if err := a.store.Put(ws.Dir, info); err != nil {
		a.logger.Warn(fmt.Sprintf("failed to record build info: %v", err))
	}

	return nil
}

// Finish emits the closing banner and, for a failure, the error annotated
// with its exit code. It returns the exit code for err.
func (a *App) Finish(err error) int {
	code := domain.ExitCode(err)

	a.logger.Event("Finishing")
	if code != domain.ExitOK {
		a.logger.Error(zerr.With(err, "exit_code", code))
	}

	return code
}

// openLog mirrors the logger to the log file at path, appending to it.
// The returned func flushes and closes the file and restores console output.
func (a *App) openLog(path string) (func(), error) {
	//nolint:gosec // Log path is provided by the user
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, domain.FilePerm)
	if err != nil {
		return nil, zerr.With(errors.Join(domain.ErrLogOpenFailed, err), "path", path)
	}

	buf := bufio.NewWriter(f)
	a.logger.SetOutput(io.MultiWriter(a.stdout, buf))

	return func() {
		a.logger.SetOutput(a.stdout)
		if err := buf.Flush(); err != nil {
			a.logger.Warn(fmt.Sprintf("failed to flush log file: %v", err))
		}
		if err := f.Close(); err != nil {
			a.logger.Warn(fmt.Sprintf("failed to close log file: %v", err))
		}
	}, nil
}
