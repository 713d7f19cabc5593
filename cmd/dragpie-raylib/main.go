// Command dragpie-raylib shows a draggable pie chart in a raylib window.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/dragpie/internal/config"
	"github.com/philipparndt/dragpie/internal/sample"
	"github.com/philipparndt/dragpie/pkg/piechart"
	"github.com/philipparndt/dragpie/pkg/raster"
	"github.com/philipparndt/dragpie/pkg/watcher"
	"github.com/philipparndt/dragpie/version"
	"github.com/spf13/cobra"
)

type options struct {
	path       string
	watch      bool
	collapsing bool
	random     bool
}

// viewer holds the window state between frames.
type viewer struct {
	opts        options
	collapsing  *bool
	chart       *piechart.Chart[raster.Format]
	needsReload atomic.Bool
	lastMouse   rl.Vector2
	logger      *slog.Logger
}

func main() {
	var opts options
	root := &cobra.Command{
		Use:           "dragpie-raylib [chart]",
		Short:         "Draggable pie chart in a raylib window",
		Version:       version.String(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.path = args[0]
			}
			v := &viewer{opts: opts, logger: slog.Default()}
			if cmd.Flags().Changed("collapsing") {
				v.collapsing = &opts.collapsing
			}
			return v.run()
		},
	}
	root.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Reload the chart file when it changes")
	root.Flags().BoolVar(&opts.collapsing, "collapsing", false, "Collapse segments instead of shifting them")
	root.Flags().BoolVar(&opts.random, "random", false, "Use random proportions")

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (v *viewer) definition() (*config.Chart, error) {
	var (
		def *config.Chart
		err error
	)
	if v.opts.random {
		def, err = sample.Chart(5, 0.05, sample.NewRand(rand.Uint64()))
	} else {
		def, err = config.Open(v.opts.path)
	}
	if err != nil {
		return nil, err
	}
	if v.collapsing != nil {
		def.Collapsing = *v.collapsing
	}
	return def, nil
}

func (v *viewer) load() error {
	def, err := v.definition()
	if err != nil {
		return err
	}
	chart, err := piechart.New(def.PieConfig(screenRenderer{}, screenRenderer{}, nil, v.logger))
	if err != nil {
		return err
	}
	v.chart = chart
	return nil
}

func (v *viewer) run() error {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(800, 800, "dragpie")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	// New renders once, which counts as drawing.
	rl.BeginDrawing()
	err := v.load()
	rl.EndDrawing()
	if err != nil {
		return err
	}

	if v.opts.watch && v.opts.path != "" && !v.opts.random {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		fw, err := watcher.New(watcher.DefaultDebounce, v.logger)
		if err != nil {
			return err
		}
		defer fw.Close()
		if err := fw.Watch(v.opts.path, func(string) { v.needsReload.Store(true) }); err != nil {
			return err
		}
		fw.Start(ctx)
	}

	for !rl.WindowShouldClose() {
		// Reloads and input both render the chart, so they run inside the frame.
		// Reloading stays on the main thread, raylib is not thread safe.
		rl.BeginDrawing()
		if v.needsReload.Swap(false) {
			if err := v.load(); err != nil {
				v.logger.Error("reload failed", "path", v.opts.path, "error", err)
			}
		}
		v.handleInput()
		v.chart.Render()
		v.drawPercentages()
		rl.EndDrawing()
	}
	return nil
}

func (v *viewer) handleInput() {
	mouse := rl.GetMousePosition()
	x, y := float64(mouse.X), float64(mouse.Y)

	if mouse != v.lastMouse {
		v.chart.PointerMove(x, y)
		v.lastMouse = mouse
	}
	if rl.IsMouseButtonPressed(rl.MouseLeftButton) {
		v.chart.PointerDown(x, y)
	}
	if rl.IsMouseButtonReleased(rl.MouseLeftButton) {
		v.chart.PointerUp()
	}
}

func (v *viewer) drawPercentages() {
	y := int32(10)
	percentages := v.chart.Percentages()
	for i, s := range v.chart.Segments() {
		text := fmt.Sprintf("%s %.0f%%", s.Payload.Label, percentages[i])
		rl.DrawRectangle(10, y+3, 12, 12, toRaylib(s.Payload.Color))
		rl.DrawText(text, 28, y, 18, rl.DarkGray)
		y += 22
	}
}
