package ports

import (
	"context"

	"github.com/jeremyj563/vsts-ahk-build/internal/core/domain"
)

// DependencyResolver makes sure a dependency's files exist in a workspace.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type DependencyResolver interface {
	// Ensure downloads and extracts dep into ws unless all of its files are present.
	Ensure(ctx context.Context, ws domain.Workspace, dep domain.Dependency) error
}
