package config

// Buildfile represents the structure of the ahkbuild.yaml configuration file.
type Buildfile struct {
	Version       string            `yaml:"version"`
	Compiler      string            `yaml:"compiler"`
	InputFlag     string            `yaml:"inputFlag"`
	Args          []string          `yaml:"args"`
	ArtifactGrace string            `yaml:"artifactGrace"`
	Env           map[string]string `yaml:"env"`
	Dependencies  *[]DependencyDTO  `yaml:"dependencies"`
}

// DependencyDTO represents a dependency definition in the configuration.
type DependencyDTO struct {
	Name    string   `yaml:"name"`
	URL     string   `yaml:"url"`
	Archive string   `yaml:"archive"`
	Files   []string `yaml:"files"`
}
