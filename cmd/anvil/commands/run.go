package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/anvil/internal/adapters/detector"
	"go.trai.ch/anvil/internal/app"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [targets...]",
		Short: "Run targets, or the default target when none are given",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			keepGoing, _ := cmd.Flags().GetBool("keep-going")
			trace, _ := cmd.Flags().GetBool("trace")
			ci, _ := cmd.Flags().GetBool("ci")

			return c.app.Run(cmd.Context(), args, app.RunOptions{
				Options:   options(cmd),
				KeepGoing: keepGoing,
				Trace:     trace,
				CI:        detector.Resolve(ci, cmd.Flags().Changed("ci")),
			})
		},
	}
	cmd.Flags().BoolP("keep-going", "k", false, "Report task failures as warnings and keep building")
	cmd.Flags().Bool("trace", false, "Record a span for every task")
	cmd.Flags().Bool("ci", false, "Format output for log collectors (default: detected)")
	return cmd
}
