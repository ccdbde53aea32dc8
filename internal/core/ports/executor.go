package ports

import (
	"context"

	"github.com/jeremyj563/vsts-ahk-build/internal/core/domain"
)

// Executor defines the interface for running external processes.
//
//go:generate go run go.uber.org/mock/mockgen -source=executor.go -destination=mocks/mock_executor.go -package=mocks
type Executor interface {
	// Execute runs the invocation and blocks until the process exits.
	//
	// It returns an error if the process cannot be started or exits non-zero.
	Execute(ctx context.Context, inv domain.Invocation) error
}
