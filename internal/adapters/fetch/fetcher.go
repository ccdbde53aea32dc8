// Package fetch downloads dependency archives over HTTP.
package fetch

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/jeremyj563/vsts-ahk-build/internal/build"
	"github.com/jeremyj563/vsts-ahk-build/internal/core/domain"
	"github.com/jeremyj563/vsts-ahk-build/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DefaultTimeout bounds a single download, including reading the body.
	DefaultTimeout = 5 * time.Minute

	userAgent = "ahkbuild/"
)

var _ ports.Fetcher = (*Fetcher)(nil)

// Fetcher implements ports.Fetcher using net/http.
type Fetcher struct {
	httpClient *http.Client
}

// NewFetcher creates a Fetcher with DefaultTimeout.
func NewFetcher() *Fetcher {
	return NewFetcherWithClient(&http.Client{Timeout: DefaultTimeout})
}

// NewFetcherWithClient creates a Fetcher that issues requests through client.
func NewFetcherWithClient(client *http.Client) *Fetcher {
	return &Fetcher{httpClient: client}
}

// Fetch downloads url and writes the body to dest. The file appears at dest
// only once the whole body has been received.
func (f *Fetcher) Fetch(ctx context.Context, url, dest string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create request"), "url", url)
	}
	req.Header.Set("User-Agent", userAgent+build.Version)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to fetch archive"), "url", url)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		err := zerr.With(domain.ErrUnexpectedStatus, "status_code", resp.StatusCode)
		return zerr.With(err, "url", url)
	}

	if err := atomicWriteFile(dest, resp.Body); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write archive"), "path", dest)
	}

	return nil
}

// atomicWriteFile streams r to a temp file next to path and renames it into place.
func atomicWriteFile(path string, r io.Reader) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".download-*")
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

	if _, err = io.Copy(tmp, r); err != nil {
		_ = tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	if err = os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
