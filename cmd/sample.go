package cmd

import (
	"math/rand/v2"

	"github.com/philipparndt/dragpie/internal/config"
	"github.com/philipparndt/dragpie/internal/sample"
	"github.com/spf13/cobra"
)

func newSampleCmd() *cobra.Command {
	var (
		n         int
		minWeight float64
		seed      uint64
		format    string
	)

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print a chart file with random proportions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = rand.Uint64()
			}
			c, err := sample.Chart(n, minWeight, sample.NewRand(seed))
			if err != nil {
				return err
			}
			return config.Encode(cmd.OutOrStdout(), c, format)
		},
	}

	cmd.Flags().IntVarP(&n, "segments", "n", 5, "Number of segments")
	cmd.Flags().Float64Var(&minWeight, "min", 0.05, "Smallest proportion of a segment")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Random seed (0 picks one)")
	cmd.Flags().StringVarP(&format, "format", "f", "toml", "Output format (toml, yaml)")
	return cmd
}
