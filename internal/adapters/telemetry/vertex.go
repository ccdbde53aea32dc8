package telemetry

import (
	"io"

	"github.com/jeremyj563/vsts-ahk-build/internal/core/ports"
	"github.com/vito/progrock"
)

var _ ports.Vertex = (*Vertex)(nil)

// Vertex implements ports.Vertex wrapping *progrock.VertexRecorder.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Stderr returns a writer capturing the step's error output.
func (v *Vertex) Stderr() io.Writer {
	return v.vertex.Stderr()
}

// Complete marks the vertex finished, failed when err is non-nil.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}

// Cached marks the vertex as satisfied without work.
func (v *Vertex) Cached() {
	v.vertex.Cached()
}
