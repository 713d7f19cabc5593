package app

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/dragpie/pkg/viewer"
)

// ui is the main window content: the chart above a percentage table.
type ui struct {
	window  fyne.Window
	pie     *viewer.PieWidget
	table   *fyne.Container
	rows    []Row
	percent []*widget.Label
	logger  *slog.Logger
}

// update refreshes the chart image and the table after every render.
func (u *ui) update(s *Session) {
	rows := s.Rows()
	if !sameSegments(rows, u.rows) {
		u.buildTable(s, rows)
	}
	u.rows = rows
	for i, row := range rows {
		u.percent[i].SetText(row.Percent)
	}
	if u.pie != nil {
		u.pie.Refresh()
	}
}

// sameSegments reports whether a and b name the same segments, ignoring sizes.
func sameSegments(a, b []Row) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Label != b[i].Label || a[i].Color != b[i].Color {
			return false
		}
	}
	return true
}

func (u *ui) buildTable(s *Session, rows []Row) {
	u.percent = make([]*widget.Label, len(rows))

	cells := make([]fyne.CanvasObject, 0, len(rows))
	for i, row := range rows {
		swatch := canvas.NewRectangle(row.Color)
		swatch.SetMinSize(fyne.NewSize(12, 12))

		name := widget.NewLabel(row.Label)
		name.TextStyle = fyne.TextStyle{Bold: true}

		u.percent[i] = widget.NewLabel(row.Percent)
		u.percent[i].Alignment = fyne.TextAlignCenter

		grow := widget.NewButton("+", func() { s.Grow(i) })
		shrink := widget.NewButton("−", func() { s.Shrink(i) })

		cells = append(cells, container.NewVBox(
			container.NewCenter(container.NewHBox(swatch, name)),
			u.percent[i],
			container.NewGridWithColumns(2, grow, shrink),
		))
	}

	grid := layout.NewGridLayoutWithColumns(max(len(cells), 1))
	if u.table == nil {
		u.table = container.New(grid, cells...)
		return
	}
	u.table.Layout = grid
	u.table.Objects = cells
	u.table.Refresh()
}
