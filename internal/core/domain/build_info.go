package domain

import (
	"path/filepath"
	"strings"
	"time"
)

// ArtifactExt is the extension of the executable the compiler produces.
const ArtifactExt = ".exe"

// BuildRequest is a request to compile one script.
type BuildRequest struct {
	// Script is the path of the input script.
	Script string
}

// OutputArtifactPath returns the path the compiler is expected to write:
// the script's directory and base name with ArtifactExt.
func (r BuildRequest) OutputArtifactPath() string {
	ext := filepath.Ext(r.Script)
	return strings.TrimSuffix(r.Script, ext) + ArtifactExt
}

// BuildInfo is the receipt of a successful build.
type BuildInfo struct {
	Script       string    `json:"script,omitzero"`
	Artifact     string    `json:"artifact,omitzero"`
	ArtifactHash string    `json:"artifact_hash,omitzero"`
	ArtifactSize int64     `json:"artifact_size,omitzero"`
	Compiler     string    `json:"compiler,omitzero"`
	Timestamp    time.Time `json:"timestamp,omitzero"`
}
