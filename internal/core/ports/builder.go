package ports

import (
	"context"

	"github.com/jeremyj563/vsts-ahk-build/internal/core/domain"
)

// Builder compiles a script into an executable.
//
//go:generate go run go.uber.org/mock/mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type Builder interface {
	// Build compiles the workspace's script and returns the receipt of the new artifact.
	Build(ctx context.Context, ws domain.Workspace, settings domain.Settings) (domain.BuildInfo, error)
}
