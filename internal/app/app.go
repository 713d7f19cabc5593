// Package app is the desktop application: a draggable chart with a
// percentage table below it.
package app

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"github.com/philipparndt/dragpie/internal/config"
	"github.com/philipparndt/dragpie/pkg/raster"
	"github.com/philipparndt/dragpie/pkg/viewer"
	"github.com/philipparndt/dragpie/pkg/watcher"
	"github.com/philipparndt/dragpie/version"
)

// Run opens the window and blocks until it is closed.
func Run(opts Options) error {
	logger := opts.logger()

	def, err := LoadDefinition(opts)
	if err != nil {
		return err
	}

	a := fyneapp.NewWithID("io.github.philipparndt.dragpie")
	w := a.NewWindow(fmt.Sprintf("dragpie %s", version.Version))

	u := &ui{window: w, logger: logger}
	r := raster.NewRenderer(400, 400)
	session, err := NewSession(def, r, logger, u.update)
	if err != nil {
		return err
	}

	u.pie = viewer.NewPieWidget(r)
	u.pie.SetHandler(session)
	u.pie.SetOnResize(session.Render)

	w.SetContent(container.NewBorder(nil, container.NewPadded(u.table), nil, nil, u.pie))

	if opts.Watch && opts.ConfigPath != "" && !opts.Random {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		fw, err := u.watch(ctx, opts, session)
		if err != nil {
			logger.Warn("auto-reload not available", "error", err)
		} else {
			defer fw.Close()
		}
	}

	w.Resize(fyne.NewSize(800, 640))
	w.ShowAndRun()
	return nil
}

// watch reloads the chart when the definition file changes. Loading happens on
// the watcher goroutine, the chart is replaced on the UI thread.
func (u *ui) watch(ctx context.Context, opts Options, session *Session) (*watcher.Watcher, error) {
	fw, err := watcher.New(watcher.DefaultDebounce, u.logger)
	if err != nil {
		return nil, err
	}

	err = fw.Watch(opts.ConfigPath, func(path string) {
		def, err := config.Load(path)
		if err == nil {
			opts.apply(def)
		}

		fyne.Do(func() {
			if err != nil {
				u.logger.Error("reload failed", "path", path, "error", err)
				dialog.ShowError(err, u.window)
				return
			}
			if err := session.Reload(def); err != nil {
				dialog.ShowError(err, u.window)
				return
			}
			u.logger.Info("chart reloaded", "path", path)
		})
	})
	if err != nil {
		fw.Close()
		return nil, err
	}

	fw.Start(ctx)
	u.logger.Info("watching chart file", "path", opts.ConfigPath)
	return fw, nil
}
