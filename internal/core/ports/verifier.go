package ports

// Verifier defines the interface for verifying file existence.
//
//go:generate go run go.uber.org/mock/mockgen -source=verifier.go -destination=mocks/mock_verifier.go -package=mocks
type Verifier interface {
	// VerifyOutputs checks if all output files exist in the given root directory.
	VerifyOutputs(root string, outputs []string) (bool, error)
	// MissingOutputs returns the outputs that do not exist in root, in order.
	MissingOutputs(root string, outputs []string) ([]string, error)
	// MissingPatterns returns the patterns matching no file in root, in order.
	// A pattern without glob metacharacters is checked literally.
	MissingPatterns(root string, patterns []string) ([]string, error)
}
