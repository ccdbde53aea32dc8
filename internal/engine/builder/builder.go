// Package builder compiles a workspace's script into an executable.
package builder

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jeremyj563/vsts-ahk-build/internal/core/domain"
	"github.com/jeremyj563/vsts-ahk-build/internal/core/ports"
	"go.trai.ch/zerr"
)

// PollInterval is how often the artifact is checked for during the grace period.
const PollInterval = 100 * time.Millisecond

var _ ports.Builder = (*Builder)(nil)

// Builder implements ports.Builder by running the configured compiler.
type Builder struct {
	executor  ports.Executor
	verifier  ports.Verifier
	hasher    ports.Hasher
	logger    ports.Logger
	telemetry ports.Telemetry
	now       func() time.Time
}

// New creates a new Builder.
func New(
	executor ports.Executor,
	verifier ports.Verifier,
	hasher ports.Hasher,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Builder {
	return &Builder{
		executor:  executor,
		verifier:  verifier,
		hasher:    hasher,
		logger:    logger,
		telemetry: telemetry,
		now:       time.Now,
	}
}

// Build compiles the workspace's script.
//
// Any previous artifact is deleted first and is not restored on failure. The
// compiler runs to completion, then the artifact is awaited for at most
// settings.ArtifactGrace. Every failure carries domain.ErrBuildFailed.
func (b *Builder) Build(
	ctx context.Context,
	ws domain.Workspace,
	settings domain.Settings,
) (info domain.BuildInfo, err error) {
	artifact := ws.Request().OutputArtifactPath()
	artifactName := filepath.Base(artifact)

	ctx, vertex := b.telemetry.Record(ctx, "compile "+filepath.Base(ws.Script))
	defer func() {
		vertex.Complete(err)
	}()

	if err := b.removeStale(ws.Dir, artifact); err != nil {
		return domain.BuildInfo{}, errors.Join(domain.ErrBuildFailed, err)
	}

	inv := domain.Invocation{
		Name:        "compile",
		Command:     settings.CompileCommand(ws.Script),
		WorkingDir:  ws.Dir,
		Environment: settings.Environment,
	}

	b.logger.Info(fmt.Sprintf("compiling %s", filepath.Base(ws.Script)))
	if err := b.executor.Execute(ctx, inv); err != nil {
		err = zerr.With(errors.Join(domain.ErrCompilerFailed, err), "compiler", settings.Compiler)
		return domain.BuildInfo{}, errors.Join(domain.ErrBuildFailed, err)
	}

	if err := b.waitForArtifact(ctx, ws.Dir, artifactName, settings.ArtifactGrace); err != nil {
		return domain.BuildInfo{}, errors.Join(domain.ErrBuildFailed, zerr.With(err, "artifact", artifact))
	}

	hash, err := b.hasher.ComputeFileHash(artifact)
	if err != nil {
		return domain.BuildInfo{}, errors.Join(domain.ErrBuildFailed, err)
	}

	stat, err := os.Stat(artifact)
	if err != nil {
		return domain.BuildInfo{}, errors.Join(domain.ErrBuildFailed, zerr.Wrap(err, "failed to stat artifact"))
	}

	b.logger.Info(fmt.Sprintf("build succeeded: %s", artifact))

	return domain.BuildInfo{
		Script:       ws.Script,
		Artifact:     artifact,
		ArtifactHash: hash,
		ArtifactSize: stat.Size(),
		Compiler:     settings.Compiler,
		Timestamp:    b.now(),
	}, nil
}

// removeStale deletes a previous artifact and confirms it is gone.
func (b *Builder) removeStale(dir, artifact string) error {
	if err := os.Remove(artifact); err != nil && !errors.Is(err, os.ErrNotExist) {
		b.logger.Warn(fmt.Sprintf("failed to remove %s: %v", artifact, err))
	}

	missing, err := b.verifier.MissingOutputs(dir, []string{filepath.Base(artifact)})
	if err != nil {
		return err
	}
	if len(missing) == 0 {
		return zerr.With(domain.ErrStaleArtifact, "artifact", artifact)
	}
	return nil
}

// waitForArtifact checks for name in dir until it exists or grace elapses.
// Compilers that hand off to a child process may exit before the file lands.
func (b *Builder) waitForArtifact(ctx context.Context, dir, name string, grace time.Duration) error {
	deadline := time.NewTimer(grace)
	defer deadline.Stop()

	ticker := time.NewTicker(PollInterval)
	defer ticker.Stop()

	for {
		ok, err := b.verifier.VerifyOutputs(dir, []string{name})
		if err != nil {
			return err
		}
		if ok {
			return nil
		}

		select {
		case <-ctx.Done():
			return errors.Join(domain.ErrArtifactMissing, ctx.Err())
		case <-deadline.C:
			return domain.ErrArtifactMissing
		case <-ticker.C:
		}
	}
}
