package shell_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jeremyj563/vsts-ahk-build/internal/adapters/shell"
	"github.com/jeremyj563/vsts-ahk-build/internal/core/domain"
	"github.com/jeremyj563/vsts-ahk-build/internal/core/ports"
	"github.com/jeremyj563/vsts-ahk-build/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExecutor_Execute_StdoutDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	// No logger calls expected: stdout never reaches the log.

	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(), domain.Invocation{
		Name:       "compile",
		Command:    []string{"sh", "-c", "echo compiled"},
		WorkingDir: t.TempDir(),
	})
	require.NoError(t, err)
}

func TestExecutor_Execute_StderrLines(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	gomock.InOrder(
		mockLogger.EXPECT().Warn("line1").Times(1),
		mockLogger.EXPECT().Warn("line2").Times(1),
	)

	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(), domain.Invocation{
		Name:       "compile",
		Command:    []string{"sh", "-c", "echo line1 >&2; echo line2 >&2"},
		WorkingDir: t.TempDir(),
	})
	require.NoError(t, err)
}

func TestExecutor_Execute_FragmentedStderr(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("part1part2").Times(1)

	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(), domain.Invocation{
		Name:       "compile",
		Command:    []string{"sh", "-c", "printf part1 >&2; sleep 0.1; echo part2 >&2"},
		WorkingDir: t.TempDir(),
	})
	require.NoError(t, err)
}

func TestExecutor_Execute_UnterminatedStderrFlushed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("no newline").Times(1)

	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(), domain.Invocation{
		Name:    "compile",
		Command: []string{"sh", "-c", "printf 'no newline' >&2"},
	})
	require.NoError(t, err)
}

func TestExecutor_Execute_WorkingDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	executor := shell.NewExecutor(mockLogger)

	tmpDir := t.TempDir()
	err := executor.Execute(context.Background(), domain.Invocation{
		Name:       "compile",
		Command:    []string{"sh", "-c", "touch created.exe"},
		WorkingDir: tmpDir,
	})
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(tmpDir, "created.exe"))
}

func TestExecutor_Execute_EnvironmentOverrides(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("test-value-123").Times(1)

	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(), domain.Invocation{
		Name:        "compile",
		Command:     []string{"sh", "-c", "echo $MY_TEST_VAR >&2"},
		Environment: map[string]string{"MY_TEST_VAR": "test-value-123"},
		WorkingDir:  t.TempDir(),
	})
	require.NoError(t, err)
}

func TestExecutor_Execute_CompilerInWorkingDir(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("local compiler").Times(1)

	executor := shell.NewExecutor(mockLogger)

	tmpDir := t.TempDir()
	script := "#!/bin/sh\necho 'local compiler' >&2\n"
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "fakec"), []byte(script), 0o700))

	err := executor.Execute(context.Background(), domain.Invocation{
		Name:       "compile",
		Command:    []string{"fakec", "/in", "main.ahk"},
		WorkingDir: tmpDir,
	})
	require.NoError(t, err)
}

func TestExecutor_Execute_CommandFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("syntax error").Times(1)

	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(), domain.Invocation{
		Name:       "compile",
		Command:    []string{"sh", "-c", "echo 'syntax error' >&2; exit 42"},
		WorkingDir: t.TempDir(),
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "command failed")
	assert.ErrorContains(t, err, "exit status 42")
}

func TestExecutor_Execute_InvalidCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(), domain.Invocation{
		Name:       "compile",
		Command:    []string{"nonexistent-command-xyz123"},
		WorkingDir: t.TempDir(),
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "command failed")
}

func TestExecutor_Execute_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	executor := shell.NewExecutor(mockLogger)

	err := executor.Execute(context.Background(), domain.Invocation{Name: "compile"})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrEmptyCommand.Error())
}

func TestExecutor_Execute_ContextCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	executor := shell.NewExecutor(mockLogger)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	err := executor.Execute(ctx, domain.Invocation{
		Name:       "compile",
		Command:    []string{"sleep", "10"},
		WorkingDir: t.TempDir(),
	})
	require.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestExecutor_Execute_WithVertex(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn("hello to stderr").Times(1)

	mockVertex := mocks.NewMockVertex(ctrl)

	var stderrBuf bytes.Buffer
	mockVertex.EXPECT().Stderr().Return(&stderrBuf).AnyTimes()

	executor := shell.NewExecutor(mockLogger)

	ctx := ports.ContextWithVertex(context.Background(), mockVertex)
	err := executor.Execute(ctx, domain.Invocation{
		Name:       "compile",
		Command:    []string{"sh", "-c", "echo hello to stdout; echo hello to stderr >&2"},
		WorkingDir: t.TempDir(),
	})
	require.NoError(t, err)

	assert.Equal(t, "hello to stderr\n", stderrBuf.String())
}
