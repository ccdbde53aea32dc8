package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the steps of a run.
type Telemetry interface {
	// Record starts recording a new step.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Close flushes and closes the recording session.
	Close() error
}

// Vertex is a single recorded step.
type Vertex interface {
	// Stderr returns a writer capturing the step's error output.
	Stderr() io.Writer
	// Complete marks the step finished, failed when err is non-nil.
	Complete(err error)
	// Cached marks the step as satisfied without doing any work.
	Cached()
}

type vertexKey struct{}

// ContextWithVertex returns a context carrying v.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the vertex stored in ctx, if any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexKey{}).(Vertex)
	return v, ok
}
