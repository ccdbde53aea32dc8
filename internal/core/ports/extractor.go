package ports

// Extractor pulls single entries out of archives.
//
//go:generate go run go.uber.org/mock/mockgen -source=extractor.go -destination=mocks/mock_extractor.go -package=mocks
type Extractor interface {
	// Extract writes the one entry of archivePath matching pattern into outputDir
	// and returns the written path.
	Extract(archivePath, pattern, outputDir string, overwrite bool) (string, error)
}
