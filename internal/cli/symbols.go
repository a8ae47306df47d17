package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewSymbolsCommand creates the symbols command.
func NewSymbolsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "symbols",
		Short: "List the registry in declaration order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := rootOpts.loadRegistry()
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "SYMBOL\tFLAGS\tSATISFIES")
			for _, sym := range reg.Symbols() {
				satisfies := "-"
				if len(sym.Satisfies) > 0 {
					satisfies = strings.Join(sym.Satisfies, ",")
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", sym.Name, sym.Flags, satisfies)
			}
			return w.Flush()
		},
	}
}
