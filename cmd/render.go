package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/philipparndt/dragpie/internal/app"
	"github.com/philipparndt/dragpie/pkg/piechart"
	"github.com/philipparndt/dragpie/pkg/raster"
	"github.com/spf13/cobra"
)

func newRenderCmd() *cobra.Command {
	var (
		source        sourceFlags
		changes       edits
		output        string
		width, height int
		noLabels      bool
	)

	cmd := &cobra.Command{
		Use:   "render [chart]",
		Short: "Render a chart to PNG without opening a window",
		Example: `  dragpie render chart.toml -o chart.png
  dragpie render --move 2:0.3 --collapse 0 -o - > chart.png`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if width <= 0 || height <= 0 {
				return fmt.Errorf("invalid size %dx%d", width, height)
			}

			def, err := app.LoadDefinition(source.options(cmd, args))
			if err != nil {
				return err
			}

			r := raster.NewRenderer(width, height)
			r.ShowLabels = !noLabels
			chart, err := piechart.New(def.PieConfig(r, r, nil, nil))
			if err != nil {
				return err
			}
			if err := changes.apply(chart); err != nil {
				return err
			}

			return writeImage(cmd.OutOrStdout(), output, r)
		},
	}

	source.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "chart.png", "Output PNG file, - for stdout")
	cmd.Flags().IntVar(&width, "width", 400, "Image width in pixels")
	cmd.Flags().IntVar(&height, "height", 400, "Image height in pixels")
	cmd.Flags().BoolVar(&noLabels, "no-labels", false, "Do not draw segment labels")
	cmd.Flags().StringArrayVar(&changes.moves, "move", nil, "Move a segment boundary, index:radians (repeatable)")
	cmd.Flags().IntSliceVar(&changes.collapse, "collapse", nil, "Collapse segments by index")
	return cmd
}

func writeImage(stdout io.Writer, path string, r *raster.Renderer) error {
	if path == "-" {
		return r.WritePNG(stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	if err := r.WritePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
