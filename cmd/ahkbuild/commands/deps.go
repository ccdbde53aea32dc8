package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newDepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deps <script> [log-file]",
		Short: "Ensure the script's dependencies without compiling",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.report(c.app.Resolve(cmd.Context(), runOptions(args)))
		},
	}
}
