package domain

// Invocation is a single external process run.
type Invocation struct {
	// Name labels the run in logs and telemetry.
	Name string
	// Command is the argv; Command[0] is the executable.
	Command []string
	// WorkingDir is the process working directory. Empty means the current one.
	WorkingDir string
	// Environment holds overrides applied on top of the current environment.
	Environment map[string]string
}
