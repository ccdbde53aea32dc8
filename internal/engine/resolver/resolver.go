// Package resolver makes sure a workspace holds the files of its dependencies.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jeremyj563/vsts-ahk-build/internal/core/domain"
	"github.com/jeremyj563/vsts-ahk-build/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.DependencyResolver = (*Resolver)(nil)

// Resolver implements ports.DependencyResolver by downloading a dependency's
// archive and extracting its required files next to the script.
type Resolver struct {
	fetcher   ports.Fetcher
	extractor ports.Extractor
	verifier  ports.Verifier
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a new Resolver.
func New(
	fetcher ports.Fetcher,
	extractor ports.Extractor,
	verifier ports.Verifier,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *Resolver {
	return &Resolver{
		fetcher:   fetcher,
		extractor: extractor,
		verifier:  verifier,
		logger:    logger,
		telemetry: telemetry,
	}
}

// Ensure makes every required file of dep present in the workspace directory.
//
// Nothing is downloaded when all files already exist. Otherwise the archive is
// fetched, each required file is extracted over any existing copy, and the
// archive is removed. Failures carry domain.ErrDownloadFailed or
// domain.ErrExtractionFailed.
func (r *Resolver) Ensure(ctx context.Context, ws domain.Workspace, dep domain.Dependency) (err error) {
	ctx, vertex := r.telemetry.Record(ctx, "resolve "+dep.Name())
	defer func() {
		vertex.Complete(err)
	}()

	files := dep.RequiredFiles()

	missing, err := r.verifier.MissingPatterns(ws.Dir, files)
	if err != nil {
		err = zerr.With(zerr.Wrap(err, "failed to check dependency files"), "dependency", dep.Name())
		return errors.Join(domain.ErrDownloadFailed, err)
	}

	if len(missing) == 0 {
		r.logger.Info(fmt.Sprintf("dependencies found: %s", dep))
		vertex.Cached()
		return nil
	}

	r.logger.Info(fmt.Sprintf("missing dependencies: %s (%s)", dep.Name(), strings.Join(missing, ", ")))

	archivePath := ws.Path(dep.ArchiveName())
	if err := r.download(ctx, ws, dep); err != nil {
		return errors.Join(domain.ErrDownloadFailed, err)
	}
	defer r.removeArchive(archivePath)

	for _, file := range files {
		if _, err := r.extractor.Extract(archivePath, file, ws.Dir, true); err != nil {
			err = zerr.With(zerr.With(err, "dependency", dep.Name()), "file", file)
			return errors.Join(domain.ErrExtractionFailed, err)
		}
	}

	r.logger.Info(fmt.Sprintf("dependencies resolved: %s", dep))
	return nil
}

func (r *Resolver) download(ctx context.Context, ws domain.Workspace, dep domain.Dependency) error {
	archivePath := ws.Path(dep.ArchiveName())
	if err := r.fetcher.Fetch(ctx, dep.URL(), archivePath); err != nil {
		return zerr.With(err, "dependency", dep.Name())
	}

	ok, err := r.verifier.VerifyOutputs(ws.Dir, []string{dep.ArchiveName()})
	if err != nil {
		return zerr.With(err, "dependency", dep.Name())
	}
	if !ok {
		err := zerr.With(domain.ErrArchiveMissing, "dependency", dep.Name())
		return zerr.With(err, "archive", archivePath)
	}

	return nil
}

// removeArchive deletes the downloaded archive. Failure is only logged.
func (r *Resolver) removeArchive(archivePath string) {
	if err := os.Remove(archivePath); err != nil && !errors.Is(err, os.ErrNotExist) {
		r.logger.Warn(fmt.Sprintf("failed to remove archive %s: %v", archivePath, err))
	}
}
