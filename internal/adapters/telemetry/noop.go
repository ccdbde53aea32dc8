package telemetry

import (
	"context"
	"io"

	"github.com/jeremyj563/vsts-ahk-build/internal/core/ports"
)

// NoOp is a no-op implementation of ports.Telemetry.
type NoOp struct{}

// NewNoOp creates a new NoOp.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a vertex that discards everything.
func (NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	v := NoOpVertex{}
	return ports.ContextWithVertex(ctx, v), v
}

// Close does nothing.
func (NoOp) Close() error { return nil }

// NoOpVertex is a no-op implementation of ports.Vertex.
type NoOpVertex struct{}

// Stderr returns io.Discard.
func (NoOpVertex) Stderr() io.Writer { return io.Discard }

// Complete does nothing.
func (NoOpVertex) Complete(error) {}

// Cached does nothing.
func (NoOpVertex) Cached() {}
