// Package telemetry records the steps of a run with progrock.
package telemetry

import (
	"context"

	"github.com/jeremyj563/vsts-ahk-build/internal/core/ports"
	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements ports.Telemetry using progrock.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a new Recorder whose steps are summarised to logger on Close.
func New(logger ports.Logger) ports.Telemetry {
	return NewRecorder(NewJournal(logger))
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts a vertex for the named step and stores it in the returned context.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	vertex := &Vertex{vertex: v}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	return r.w.Close()
}
