// Package cli implements the sqlgen command line.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/zoobzio/typedsql/internal/grammar"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Registry string // path to a registry YAML file; empty uses the embedded grammar

	logger *zap.Logger
}

// NewRootCommand creates the root command for the sqlgen CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sqlgen",
		Short: "sqlgen - typed SQL grammar generator",
		Long: `sqlgen turns the grammar registry into Go interfaces.

Every symbol becomes a sealed interface that embeds the interfaces of the
symbols it can stand in for. Node types marked with //sqlgen:symbol receive
their markers and convenience operations, Blank receives the absent
conformances and union symbols receive two-branch wrapper types.`,
		SilenceUsage: true,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")
	cmd.PersistentFlags().StringVar(&opts.Registry, "registry", "", "registry YAML file (default: embedded grammar)")

	// Add subcommands
	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewClosureCommand(opts))
	cmd.AddCommand(NewSymbolsCommand(opts))

	return cmd
}

// loadRegistry returns the registry named by --registry, or the embedded one.
func (o *RootOptions) loadRegistry() (*grammar.Registry, error) {
	if o.Registry == "" {
		return grammar.Default(), nil
	}
	return grammar.LoadFile(o.Registry)
}

// Logger returns the command logger, building it on first use.
func (o *RootOptions) Logger() (*zap.Logger, error) {
	if o.logger != nil {
		return o.logger, nil
	}
	config := zap.NewProductionConfig()
	if o.Verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	o.logger = logger
	return logger, nil
}
