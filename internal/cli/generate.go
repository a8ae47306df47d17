package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zoobzio/typedsql/internal/synth"
)

// GenerateOptions holds flags for the generate command.
type GenerateOptions struct {
	Dir     string
	Package string
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the zz_generated files of a package",
		Long: `Scan the Go files of --dir for //sqlgen:symbol markers and write
zz_generated.grammar.go, zz_generated.nodes.go and zz_generated.sentinel.go.

Nothing is written unless every file generates cleanly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Dir, "dir", ".", "package directory")
	cmd.Flags().StringVar(&opts.Package, "package", "", "package clause of the generated files (default: scanned package)")

	return cmd
}

func runGenerate(rootOpts *RootOptions, opts *GenerateOptions, cmd *cobra.Command) error {
	reg, err := rootOpts.loadRegistry()
	if err != nil {
		return err
	}
	logger, err := rootOpts.Logger()
	if err != nil {
		return err
	}

	gen := synth.New(reg, synth.WithLogger(logger), synth.WithPackage(opts.Package))
	paths, err := gen.Write(opts.Dir)
	if err != nil {
		logger.Error("generation failed", zap.String("dir", opts.Dir), zap.Error(err))
		return err
	}

	for _, p := range paths {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", p)
	}
	return nil
}
