package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jeremyj563/vsts-ahk-build/internal/adapters/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifier_VerifyOutputs(t *testing.T) {
	tmpDir := t.TempDir()
	verifier := fs.NewVerifier()

	// Case 1: All outputs exist
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "out1.txt"), []byte("content"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "out2.txt"), []byte("content"), 0o600))

	exists, err := verifier.VerifyOutputs(tmpDir, []string{"out1.txt", "out2.txt"})
	require.NoError(t, err)
	assert.True(t, exists)

	// Case 2: One output missing
	exists, err = verifier.VerifyOutputs(tmpDir, []string{"out1.txt", "missing.txt"})
	require.NoError(t, err)
	assert.False(t, exists)

	// Case 3: Empty list
	exists, err = verifier.VerifyOutputs(tmpDir, nil)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestVerifier_MissingOutputs(t *testing.T) {
	tmpDir := t.TempDir()
	verifier := fs.NewVerifier()

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "present.exe"), []byte("MZ"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "dir.exe"), 0o750))

	missing, err := verifier.MissingOutputs(tmpDir, []string{"a.dll", "present.exe", "dir.exe", "b.dll"})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.dll", "dir.exe", "b.dll"}, missing)
}

func TestVerifier_MissingPatterns(t *testing.T) {
	tmpDir := t.TempDir()
	verifier := fs.NewVerifier()

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "mpress.exe"), []byte("MZ"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "lib[1].ahk"), []byte("x"), 0o600))
	require.NoError(t, os.Mkdir(filepath.Join(tmpDir, "upx.dir"), 0o750))

	tests := []struct {
		name     string
		patterns []string
		want     []string
	}{
		{"literal present", []string{"mpress.exe"}, nil},
		{"literal missing", []string{"upx.exe"}, []string{"upx.exe"}},
		{"glob present", []string{"mpress*.exe"}, nil},
		{"glob missing", []string{"upx*.exe"}, []string{"upx*.exe"}},
		{"glob matching only a directory", []string{"upx.*"}, []string{"upx.*"}},
		{"order kept", []string{"b*.dll", "mpress.exe", "a*.dll"}, []string{"b*.dll", "a*.dll"}},
		{"class matches literal file", []string{"lib[[]1].ahk"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			missing, err := verifier.MissingPatterns(tmpDir, tt.patterns)
			require.NoError(t, err)
			assert.Equal(t, tt.want, missing)
		})
	}
}

func TestVerifier_MissingPatterns_BadPattern(t *testing.T) {
	verifier := fs.NewVerifier()

	_, err := verifier.MissingPatterns(t.TempDir(), []string{"mpress[.exe"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "invalid output pattern")
}

func TestVerifier_MissingPatterns_RootWithMetacharacters(t *testing.T) {
	root := filepath.Join(t.TempDir(), "build[1]")
	require.NoError(t, os.Mkdir(root, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(root, "mpress.exe"), []byte("MZ"), 0o600))

	missing, err := fs.NewVerifier().MissingPatterns(root, []string{"mpress*.exe", "upx*.exe"})
	require.NoError(t, err)
	assert.Equal(t, []string{"upx*.exe"}, missing)
}

func TestVerifier_MissingPatterns_MissingRoot(t *testing.T) {
	missing, err := fs.NewVerifier().MissingPatterns(filepath.Join(t.TempDir(), "gone"), []string{"mpress*.exe"})
	require.NoError(t, err)
	assert.Equal(t, []string{"mpress*.exe"}, missing)
}
