// Package cmd holds the dragpie command line.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/philipparndt/dragpie/internal/app"
	"github.com/philipparndt/dragpie/version"
	"github.com/spf13/cobra"
)

// sourceFlags select the chart definition, shared by every command.
type sourceFlags struct {
	collapsing bool
	random     bool
	seed       uint64
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.collapsing, "collapsing", false, "Collapse segments instead of shifting them (overrides the file)")
	cmd.Flags().BoolVar(&f.random, "random", false, "Use random proportions instead of a chart file")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "Seed for --random (0 picks one)")
}

func (f *sourceFlags) options(cmd *cobra.Command, args []string) app.Options {
	opts := app.Options{Random: f.random, Seed: f.seed, Logger: slog.Default()}
	if len(args) > 0 {
		opts.ConfigPath = args[0]
	}
	if cmd.Flags().Changed("collapsing") {
		collapsing := f.collapsing
		opts.Collapsing = &collapsing
	}
	return opts
}

func newRootCmd() *cobra.Command {
	var (
		source   sourceFlags
		watch    bool
		logLevel string
	)

	root := &cobra.Command{
		Use:   "dragpie [chart]",
		Short: "Interactive pie chart with draggable segment boundaries",
		Long: `dragpie shows a pie chart whose segment boundaries can be dragged with the mouse.
The chart is read from a TOML or YAML file; without one the built-in demo chart is shown.`,
		Version:       version.String(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), logLevel)
			if err != nil {
				return err
			}
			slog.SetDefault(logger)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := source.options(cmd, args)
			opts.Watch = watch
			return app.Run(opts)
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	source.register(root)
	root.Flags().BoolVarP(&watch, "watch", "w", false, "Reload the chart file when it changes")

	root.AddCommand(newRenderCmd(), newPercentagesCmd(), newSampleCmd())
	return root
}

// Execute runs the root command
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
