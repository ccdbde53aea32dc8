// Package commands implements the CLI commands for the ahkbuild tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/jeremyj563/vsts-ahk-build/internal/app"
	"github.com/jeremyj563/vsts-ahk-build/internal/build"
	"github.com/spf13/cobra"
)

// CLI represents the command line interface for ahkbuild.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, opts app.RunOptions) error
	Resolve(ctx context.Context, opts app.RunOptions) error
}

// RunError marks a failure the application has already logged.
type RunError struct {
	Err error
}

func (e *RunError) Error() string { return e.Err.Error() }

func (e *RunError) Unwrap() error { return e.Err }

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	var noDeps bool
	rootCmd := &cobra.Command{
		Use:   "ahkbuild <script> [log-file]",
		Short: "Fetch dependencies and compile an AutoHotkey script",
		Long: `ahkbuild makes sure the dependencies declared in ahkbuild.yaml are present
next to the script, then compiles the script into an executable.

The log file defaults to the script name with a .log extension.`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := runOptions(args)
			opts.NoDeps = noDeps
			return c.report(c.app.Run(cmd.Context(), opts))
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().BoolVar(&noDeps, "no-deps", false, "Skip dependency resolution")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newDepsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

func (c *CLI) report(err error) error {
	if err == nil {
		return nil
	}
	return &RunError{Err: err}
}

func runOptions(args []string) app.RunOptions {
	opts := app.RunOptions{Script: args[0]}
	if len(args) > 1 {
		opts.LogPath = args[1]
	}
	return opts
}
