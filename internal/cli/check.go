package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zoobzio/typedsql/internal/synth"
)

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the registry without writing anything",
		Long: `Load the registry and verify that no symbol reaches itself through
other symbols. With --dir the package is also scanned and generated in memory,
which catches unknown markers and missing manual ops.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := rootOpts.loadRegistry()
			if err != nil {
				return err
			}
			if err := reg.CheckAll(); err != nil {
				return err
			}

			if dir != "" {
				logger, err := rootOpts.Logger()
				if err != nil {
					return err
				}
				if _, err := synth.New(reg, synth.WithLogger(logger)).Generate(dir); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "registry ok: %d symbols\n", reg.Len())
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "also dry-run generation for this package directory")

	return cmd
}
