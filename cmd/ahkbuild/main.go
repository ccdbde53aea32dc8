// Package main is the entry point for the ahkbuild tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"github.com/jeremyj563/vsts-ahk-build/cmd/ahkbuild/commands"
	"github.com/jeremyj563/vsts-ahk-build/internal/app"
	"github.com/jeremyj563/vsts-ahk-build/internal/core/domain"
	_ "github.com/jeremyj563/vsts-ahk-build/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, cleanup, err := provider(ctx)
	if err != nil {
		// The logger is not available yet.
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return domain.ExitUsage
	}
	defer cleanup()

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	err = cli.Execute(ctx)
	if err == nil {
		return domain.ExitOK
	}

	// The application logs its own failures before returning them.
	var runErr *commands.RunError
	if !errors.As(err, &runErr) {
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		_, _ = fmt.Fprintln(stderr, "Run 'ahkbuild --help' for usage.")
	}
	return domain.ExitCode(err)
}
