package ports

import "context"

// Fetcher downloads remote archives.
//
//go:generate go run go.uber.org/mock/mockgen -source=fetcher.go -destination=mocks/mock_fetcher.go -package=mocks
type Fetcher interface {
	// Fetch downloads url into the file at dest, replacing it if present.
	Fetch(ctx context.Context, url, dest string) error
}
