package ports

import "github.com/jeremyj563/vsts-ahk-build/internal/core/domain"

// BuildInfoStore defines the interface for storing and retrieving build receipts.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type BuildInfoStore interface {
	// Get retrieves the receipt for a script in dir.
	// Returns nil, nil if not found.
	Get(dir, script string) (*domain.BuildInfo, error)

	// Put stores the receipt in dir.
	Put(dir string, info domain.BuildInfo) error
}
