package ports

import "github.com/jeremyj563/vsts-ahk-build/internal/core/domain"

// ConfigLoader defines the interface for loading build settings.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the settings for the given workspace directory.
	// A missing config file is not an error; defaults are returned.
	Load(dir string) (domain.Settings, error)
}
