package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/philipparndt/dragpie/internal/app"
	"github.com/philipparndt/dragpie/pkg/geometry"
	"github.com/philipparndt/dragpie/pkg/piechart"
	"github.com/philipparndt/dragpie/pkg/raster"
	"github.com/spf13/cobra"
)

func newPercentagesCmd() *cobra.Command {
	var (
		source  sourceFlags
		changes edits
	)

	cmd := &cobra.Command{
		Use:   "percentages [chart]",
		Short: "Print the share of every segment",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := app.LoadDefinition(source.options(cmd, args))
			if err != nil {
				return err
			}

			chart, err := piechart.New(def.PieConfig(piechart.FixedSurface{Width: 400, Height: 400}, nil, nil, nil))
			if err != nil {
				return err
			}
			if err := changes.apply(chart); err != nil {
				return err
			}

			printPercentages(cmd.OutOrStdout(), chart)
			return nil
		},
	}

	source.register(cmd)
	cmd.Flags().StringArrayVar(&changes.moves, "move", nil, "Move a segment boundary, index:radians (repeatable)")
	cmd.Flags().IntSliceVar(&changes.collapse, "collapse", nil, "Collapse segments by index")
	return cmd
}

func printPercentages(w io.Writer, c *piechart.Chart[raster.Format]) {
	segments := c.Segments()
	percentages := c.Percentages()

	width := len("Segment")
	for _, s := range segments {
		width = max(width, len(s.Payload.Label))
	}

	header := color.New(color.Bold)
	dim := color.New(color.Faint)

	header.Fprintf(w, "%-3s %-*s %8s %9s\n", "#", width, "Segment", "Share", "Start")
	for i, s := range segments {
		label := fmt.Sprintf("%-*s", width, s.Payload.Label)
		swatch := color.RGB(int(s.Payload.Color.R), int(s.Payload.Color.G), int(s.Payload.Color.B))

		if s.Collapsed {
			dim.Fprintf(w, "%-3d %s %8s %9s\n", i, label, "-", "collapsed")
			continue
		}
		fmt.Fprintf(w, "%-3d %s %7.1f%% %8.1f°\n", i, swatch.Sprint(label), percentages[i], geometry.RadiansToDegrees(s.Angle))
	}
}
