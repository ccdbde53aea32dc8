package shell

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/jeremyj563/vsts-ahk-build/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestResolveEnvironment(t *testing.T) {
	tests := []struct {
		name      string
		sysEnv    []string
		overrides map[string]string
		expected  []string
	}{
		{
			name:     "System only",
			sysEnv:   []string{"USER=test", "PATH=/bin", "HOME=/home/test"},
			expected: []string{"USER=test", "PATH=/bin", "HOME=/home/test"},
		},
		{
			name:      "Override replaces system value",
			sysEnv:    []string{"USER=test", "PATH=/bin"},
			overrides: map[string]string{"USER": "builder", "AHK_VERSION": "v2"},
			expected:  []string{"USER=builder", "PATH=/bin", "AHK_VERSION=v2"},
		},
		{
			name:     "Malformed entries dropped",
			sysEnv:   []string{"USER=test", "BROKEN"},
			expected: []string{"USER=test"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveEnvironment(tt.sysEnv, tt.overrides)
			sort.Strings(got)
			sort.Strings(tt.expected)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveExecutable(t *testing.T) {
	workDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(workDir, "Ahk2Exe.exe"), []byte("bin"), 0o700))
	require.NoError(t, os.Mkdir(filepath.Join(workDir, "Compiler"), 0o750))

	abs := filepath.Join(t.TempDir(), "Ahk2Exe.exe")

	tests := []struct {
		name       string
		command    string
		workingDir string
		want       string
	}{
		{"absolute path unchanged", abs, workDir, abs},
		{"working directory wins", "Ahk2Exe.exe", workDir, filepath.Join(workDir, "Ahk2Exe.exe")},
		{"directory ignored", "Compiler", workDir, "Compiler"},
		{"relative path left to exec", filepath.Join("bin", "Ahk2Exe.exe"), workDir, filepath.Join("bin", "Ahk2Exe.exe")},
		{"absent name left to exec", "packer", workDir, "packer"},
		{"no working directory", "Ahk2Exe.exe", "", "Ahk2Exe.exe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveExecutable(tt.command, tt.workingDir))
		})
	}
}

func TestLogWriter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	gomock.InOrder(
		mockLogger.EXPECT().Warn("Compiling main.ahk"),
		mockLogger.EXPECT().Warn("Warning: #Include missing"),
		mockLogger.EXPECT().Warn("tail"),
	)

	w := &logWriter{logger: mockLogger}

	_, _ = w.Write([]byte("Compiling main.ahk\r\nWarn"))
	_, _ = w.Write([]byte("ing: #Include missing\n\n"))
	_, _ = w.Write([]byte("tail"))
	require.NoError(t, w.Close())
}
