package builder_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jeremyj563/vsts-ahk-build/internal/adapters/fs"
	"github.com/jeremyj563/vsts-ahk-build/internal/adapters/logger"
	"github.com/jeremyj563/vsts-ahk-build/internal/adapters/shell"
	"github.com/jeremyj563/vsts-ahk-build/internal/adapters/telemetry"
	"github.com/jeremyj563/vsts-ahk-build/internal/core/domain"
	"github.com/jeremyj563/vsts-ahk-build/internal/core/ports/mocks"
	"github.com/jeremyj563/vsts-ahk-build/internal/engine/builder"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newWorkspace(t *testing.T) domain.Workspace {
	t.Helper()
	ws, err := domain.NewWorkspace(filepath.Join(t.TempDir(), "main.ahk"), "")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(ws.Script, []byte("MsgBox hi"), domain.FilePerm))
	return ws
}

func fastSettings() domain.Settings {
	s := domain.DefaultSettings()
	s.ArtifactGrace = 300 * time.Millisecond
	return s
}

// compileTo returns an executor action that writes content to path.
func compileTo(path, content string) func(context.Context, domain.Invocation) error {
	return func(context.Context, domain.Invocation) error {
		return os.WriteFile(path, []byte(content), domain.ExecPerm)
	}
}

func newBuilder(executor *mocks.MockExecutor, log *bytes.Buffer) *builder.Builder {
	return builder.New(
		executor,
		fs.NewVerifier(),
		fs.NewHasher(),
		logger.NewWithWriter(log),
		telemetry.NewNoOp(),
	)
}

func TestBuilder_Build_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	var log bytes.Buffer

	ws := newWorkspace(t)
	artifact := ws.Path("main.exe")
	settings := fastSettings()

	executor.EXPECT().
		Execute(gomock.Any(), domain.Invocation{
			Name:       "compile",
			Command:    []string{domain.DefaultCompiler, domain.DefaultInputFlag, ws.Script},
			WorkingDir: ws.Dir,
		}).
		DoAndReturn(compileTo(artifact, "MZ compiled"))

	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	b := newBuilder(executor, &log)
	b.SetClock(func() time.Time { return fixed })

	info, err := b.Build(context.Background(), ws, settings)
	require.NoError(t, err)

	assert.Equal(t, ws.Script, info.Script)
	assert.Equal(t, artifact, info.Artifact)
	assert.Len(t, info.ArtifactHash, 16)
	assert.Equal(t, int64(len("MZ compiled")), info.ArtifactSize)
	assert.Equal(t, domain.DefaultCompiler, info.Compiler)
	assert.Equal(t, fixed, info.Timestamp)
	assert.Contains(t, log.String(), "build succeeded")
}

func TestBuilder_Build_ReplacesStaleArtifact(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	var log bytes.Buffer

	ws := newWorkspace(t)
	artifact := ws.Path("main.exe")
	require.NoError(t, os.WriteFile(artifact, []byte("stale"), domain.FilePerm))

	executor.EXPECT().
		Execute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.Invocation) error {
			// The stale artifact is gone before the compiler runs.
			assert.NoFileExists(t, artifact)
			return os.WriteFile(artifact, []byte("fresh"), domain.ExecPerm)
		})

	_, err := newBuilder(executor, &log).Build(context.Background(), ws, fastSettings())
	require.NoError(t, err)

	content, err := os.ReadFile(artifact)
	require.NoError(t, err)
	assert.Equal(t, "fresh", string(content))
}

func TestBuilder_Build_ArtifactAppearsLate(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	var log bytes.Buffer

	ws := newWorkspace(t)
	artifact := ws.Path("main.exe")
	settings := domain.DefaultSettings()
	settings.ArtifactGrace = 5 * time.Second

	executor.EXPECT().
		Execute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.Invocation) error {
			go func() {
				time.Sleep(200 * time.Millisecond)
				_ = os.WriteFile(artifact, []byte("late"), domain.ExecPerm)
			}()
			return nil
		})

	info, err := newBuilder(executor, &log).Build(context.Background(), ws, settings)
	require.NoError(t, err)
	assert.Equal(t, artifact, info.Artifact)
}

func TestBuilder_Build_ArtifactMissing(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	var log bytes.Buffer

	ws := newWorkspace(t)
	artifact := ws.Path("main.exe")
	require.NoError(t, os.WriteFile(artifact, []byte("previous"), domain.FilePerm))

	executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Return(nil)

	_, err := newBuilder(executor, &log).Build(context.Background(), ws, fastSettings())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBuildFailed)
	assert.ErrorContains(t, err, domain.ErrArtifactMissing.Error())
	assert.Equal(t, domain.ExitBuildFailed, domain.ExitCode(err))

	// The previous artifact is not restored.
	assert.NoFileExists(t, artifact)
}

func TestBuilder_Build_CompilerFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	var log bytes.Buffer

	ws := newWorkspace(t)

	executor.EXPECT().
		Execute(gomock.Any(), gomock.Any()).
		Return(errors.New("exec: \"Ahk2Exe.exe\": executable file not found in $PATH"))

	_, err := newBuilder(executor, &log).Build(context.Background(), ws, fastSettings())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBuildFailed)
	assert.ErrorIs(t, err, domain.ErrCompilerFailed)
	assert.Equal(t, domain.ExitBuildFailed, domain.ExitCode(err))
}

func TestBuilder_Build_StaleArtifactUndeletable(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	verifier := mocks.NewMockVerifier(ctrl)

	ws := newWorkspace(t)

	// The artifact is still reported after the removal attempt.
	verifier.EXPECT().MissingOutputs(ws.Dir, []string{"main.exe"}).Return(nil, nil)
	executor.EXPECT().Execute(gomock.Any(), gomock.Any()).Times(0)

	b := builder.New(executor, verifier, fs.NewHasher(), logger.NewWithWriter(&bytes.Buffer{}), telemetry.NewNoOp())

	_, err := b.Build(context.Background(), ws, fastSettings())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBuildFailed)
	assert.ErrorContains(t, err, domain.ErrStaleArtifact.Error())
}

func TestBuilder_Build_ExtraArgs(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	var log bytes.Buffer

	ws := newWorkspace(t)
	settings := fastSettings()
	settings.Compiler = `C:\AutoHotkey\Compiler\Ahk2Exe.exe`
	settings.ExtraArgs = []string{"/compress", "1"}

	executor.EXPECT().
		Execute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv domain.Invocation) error {
			assert.Equal(t, []string{settings.Compiler, "/compress", "1", "/in", ws.Script}, inv.Command)
			return os.WriteFile(ws.Path("main.exe"), []byte("MZ"), domain.ExecPerm)
		})

	info, err := newBuilder(executor, &log).Build(context.Background(), ws, settings)
	require.NoError(t, err)
	assert.Equal(t, settings.Compiler, info.Compiler)
}

func TestBuilder_Build_ContextCanceledWhileWaiting(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	var log bytes.Buffer

	ws := newWorkspace(t)
	settings := domain.DefaultSettings()
	settings.ArtifactGrace = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	executor.EXPECT().
		Execute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, domain.Invocation) error {
			cancel()
			return nil
		})

	start := time.Now()
	_, err := newBuilder(executor, &log).Build(ctx, ws, settings)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, domain.ErrBuildFailed)
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestBuilder_Build_HasherFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	hasher := mocks.NewMockHasher(ctrl)

	ws := newWorkspace(t)
	artifact := ws.Path("main.exe")

	executor.EXPECT().Execute(gomock.Any(), gomock.Any()).DoAndReturn(compileTo(artifact, "MZ"))
	hasher.EXPECT().ComputeFileHash(artifact).Return("", errors.New("read main.exe: input/output error"))

	b := builder.New(executor, fs.NewVerifier(), hasher, logger.NewWithWriter(&bytes.Buffer{}), telemetry.NewNoOp())

	_, err := b.Build(context.Background(), ws, fastSettings())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBuildFailed)
	assert.ErrorContains(t, err, "input/output error")
	assert.Equal(t, domain.ExitBuildFailed, domain.ExitCode(err))
}

func TestBuilder_Build_PassesEnvironment(t *testing.T) {
	ctrl := gomock.NewController(t)
	executor := mocks.NewMockExecutor(ctrl)
	var log bytes.Buffer

	ws := newWorkspace(t)
	settings := fastSettings()
	settings.Environment = map[string]string{"AHK_VERSION": "v2"}

	executor.EXPECT().
		Execute(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv domain.Invocation) error {
			assert.Equal(t, map[string]string{"AHK_VERSION": "v2"}, inv.Environment)
			return os.WriteFile(ws.Path("main.exe"), []byte("MZ"), domain.ExecPerm)
		})

	_, err := newBuilder(executor, &log).Build(context.Background(), ws, settings)
	require.NoError(t, err)
}

func TestBuilder_Build_CompilerSeesEnvironment(t *testing.T) {
	var log bytes.Buffer
	l := logger.NewWithWriter(&log)

	ws := newWorkspace(t)
	settings := fastSettings()
	settings.Compiler = "sh"
	settings.ExtraArgs = []string{"-c", `printf MZ > main.exe; echo "version=$AHK_VERSION" >&2`, "sh"}
	settings.Environment = map[string]string{"AHK_VERSION": "v2"}

	b := builder.New(shell.NewExecutor(l), fs.NewVerifier(), fs.NewHasher(), l, telemetry.NewNoOp())

	info, err := b.Build(context.Background(), ws, settings)
	require.NoError(t, err)

	assert.FileExists(t, info.Artifact)
	assert.Contains(t, log.String(), "WARN: version=v2")
}
