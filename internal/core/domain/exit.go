package domain

import "errors"

// Process exit codes.
const (
	ExitOK             = 0
	ExitDownloadFailed = 1
	ExitExtractFailed  = 2
	ExitBuildFailed    = 3
	// ExitUsage covers usage and configuration errors (sysexits EX_USAGE).
	ExitUsage = 64
)

// ExitCode maps an error returned from a run to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrDownloadFailed):
		return ExitDownloadFailed
	case errors.Is(err, ErrExtractionFailed):
		return ExitExtractFailed
	case errors.Is(err, ErrBuildFailed):
		return ExitBuildFailed
	default:
		return ExitUsage
	}
}
