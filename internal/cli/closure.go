package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewClosureCommand creates the closure command.
func NewClosureCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "closure <symbol>",
		Short: "List every symbol a value of <symbol> can stand in for",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := rootOpts.loadRegistry()
			if err != nil {
				return err
			}
			closure, err := reg.Closure(args[0])
			if err != nil {
				return err
			}
			for _, name := range closure {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
