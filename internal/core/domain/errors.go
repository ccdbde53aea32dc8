package domain

import "go.trai.ch/zerr"

// Error kinds. Every failure returned to the top level is joined with exactly
// one of these so ExitCode can map it.
var (
	// ErrDownloadFailed is returned when a dependency archive cannot be fetched.
	ErrDownloadFailed = zerr.New("dependency download failed")

	// ErrExtractionFailed is returned when a required file cannot be extracted from an archive.
	ErrExtractionFailed = zerr.New("archive extraction failed")

	// ErrBuildFailed is returned when compilation fails or produces no artifact.
	ErrBuildFailed = zerr.New("build failed")
)

var (
	// ErrInvalidDependency is returned when a dependency descriptor violates its invariants.
	ErrInvalidDependency = zerr.New("invalid dependency descriptor")

	// ErrArchiveMissing is returned when a download reported success but no archive was written.
	ErrArchiveMissing = zerr.New("archive file missing after download")

	// ErrUnexpectedStatus is returned when the dependency URL answers with a non-2xx status.
	ErrUnexpectedStatus = zerr.New("unexpected HTTP status")

	// ErrEntryNotFound is returned when no archive entry matches the requested pattern.
	ErrEntryNotFound = zerr.New("archive entry not found")

	// ErrAmbiguousEntry is returned when more than one archive entry matches the requested pattern.
	ErrAmbiguousEntry = zerr.New("archive entry pattern is ambiguous")

	// ErrOutputExists is returned when extraction would overwrite a file and overwrite is disabled.
	ErrOutputExists = zerr.New("output file already exists")

	// ErrStaleArtifact is returned when a previous build artifact cannot be removed.
	ErrStaleArtifact = zerr.New("stale build artifact could not be removed")

	// ErrArtifactMissing is returned when the compiler exits without producing the artifact.
	ErrArtifactMissing = zerr.New("build artifact missing")

	// ErrCompilerFailed is returned when the compiler process fails to start or exits non-zero.
	ErrCompilerFailed = zerr.New("compiler failed")

	// ErrEmptyCommand is returned when an invocation has no command to run.
	ErrEmptyCommand = zerr.New("empty command")

	// ErrScriptNotFound is returned when the input script does not exist.
	ErrScriptNotFound = zerr.New("input script not found")

	// ErrNoScriptSpecified is returned when no input script is given.
	ErrNoScriptSpecified = zerr.New("no input script specified")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrLogOpenFailed is returned when the log file cannot be opened.
	ErrLogOpenFailed = zerr.New("failed to open log file")

	// ErrStoreReadFailed is returned when the build info store cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build info")

	// ErrStoreUnmarshalFailed is returned when the build info store cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal build info")

	// ErrStoreMarshalFailed is returned when the build info cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to marshal build info")

	// ErrStoreWriteFailed is returned when the build info store cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build info")
)
