package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/jeremyj563/vsts-ahk-build/cmd/ahkbuild/commands"
	"github.com/jeremyj563/vsts-ahk-build/internal/app"
	"github.com/jeremyj563/vsts-ahk-build/internal/build"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockApp struct {
	runFunc     func(ctx context.Context, opts app.RunOptions) error
	resolveFunc func(ctx context.Context, opts app.RunOptions) error
}

func (m *mockApp) Run(ctx context.Context, opts app.RunOptions) error {
	if m.runFunc != nil {
		return m.runFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Resolve(ctx context.Context, opts app.RunOptions) error {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx, opts)
	}
	return nil
}

func newCLI(a commands.Application, args ...string) (*commands.CLI, *bytes.Buffer) {
	cli := commands.New(a)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	// A nil slice makes cobra fall back to os.Args.
	cli.SetArgs(append([]string{}, args...))
	return cli, buf
}

func TestCommands_Root(t *testing.T) {
	t.Run("passes script and default log", func(t *testing.T) {
		var captured app.RunOptions
		called := false
		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) error {
				captured = opts
				called = true
				return nil
			},
		}

		cli, _ := newCLI(mock, "main.ahk")
		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, called)
		assert.Equal(t, app.RunOptions{Script: "main.ahk"}, captured)
	})

	t.Run("passes log file and no-deps", func(t *testing.T) {
		var captured app.RunOptions
		mock := &mockApp{
			runFunc: func(_ context.Context, opts app.RunOptions) error {
				captured = opts
				return nil
			},
		}

		cli, _ := newCLI(mock, "--no-deps", "main.ahk", "build.log")
		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, app.RunOptions{Script: "main.ahk", LogPath: "build.log", NoDeps: true}, captured)
	})

	t.Run("marks run failures as reported", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ app.RunOptions) error {
				return errors.New("simulated error")
			},
		}

		cli, _ := newCLI(mock, "main.ahk")
		err := cli.Execute(context.Background())
		require.Error(t, err)

		var runErr *commands.RunError
		require.ErrorAs(t, err, &runErr)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects missing script", func(t *testing.T) {
		mock := &mockApp{
			runFunc: func(_ context.Context, _ app.RunOptions) error {
				panic("should not be called")
			},
		}

		cli, _ := newCLI(mock)
		err := cli.Execute(context.Background())
		require.Error(t, err)

		var runErr *commands.RunError
		assert.False(t, errors.As(err, &runErr))
	})

	t.Run("rejects extra arguments", func(t *testing.T) {
		cli, _ := newCLI(&mockApp{}, "main.ahk", "build.log", "extra")
		require.Error(t, cli.Execute(context.Background()))
	})

	t.Run("version flag", func(t *testing.T) {
		cli, buf := newCLI(&mockApp{}, "--version")
		require.NoError(t, cli.Execute(context.Background()))
		assert.Contains(t, buf.String(), build.Version)
		assert.Contains(t, buf.String(), build.Commit)
	})
}

func TestCommands_Deps(t *testing.T) {
	t.Run("resolves without building", func(t *testing.T) {
		var captured app.RunOptions
		mock := &mockApp{
			runFunc: func(_ context.Context, _ app.RunOptions) error {
				panic("should not be called")
			},
			resolveFunc: func(_ context.Context, opts app.RunOptions) error {
				captured = opts
				return nil
			},
		}

		cli, _ := newCLI(mock, "deps", "main.ahk", "deps.log")
		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, app.RunOptions{Script: "main.ahk", LogPath: "deps.log"}, captured)
	})

	t.Run("marks failures as reported", func(t *testing.T) {
		mock := &mockApp{
			resolveFunc: func(_ context.Context, _ app.RunOptions) error {
				return errors.New("download failed")
			},
		}

		cli, _ := newCLI(mock, "deps", "main.ahk")
		err := cli.Execute(context.Background())

		var runErr *commands.RunError
		require.ErrorAs(t, err, &runErr)
	})
}

func TestCommands_Version(t *testing.T) {
	cli, buf := newCLI(&mockApp{}, "version")

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t,
		"ahkbuild version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n",
		buf.String(),
	)
}
