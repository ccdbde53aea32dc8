package ports

// Hasher defines the interface for computing file digests.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeFileHash computes the hex digest of a file's content.
	ComputeFileHash(path string) (string, error)
}
