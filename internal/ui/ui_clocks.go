package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-worldclock/internal/config"
	"github.com/tartampluch/go-worldclock/internal/engine"
)

// Placeholder text for list row labels before their first update.
const rowPlaceholder = "Row Content"

// markerFor picks the cosmetic day/night marker for a projection.
func markerFor(p engine.Projection) string {
	if p.IsDaytime {
		return config.MarkerDay
	}
	return config.MarkerNight
}

// rowSubtitle renders the secondary line of a clock row: abbreviation plus
// the formatted UTC offset.
func rowSubtitle(rec engine.TimezoneRecord) string {
	return fmt.Sprintf("%s · UTC%s", rec.Abbreviation, engine.FormatOffset(rec.OffsetHours))
}

// buildClocksWindow constructs the main window: the list of saved clocks,
// refreshed once per second by the ticker. Closing it hides it; the tray
// keeps the application alive.
func (app *WorldClockApp) buildClocksWindow() {
	w := app.App.NewWindow(app.GetMsg(config.TKeyWinTitle))
	w.Resize(fyne.NewSize(config.MainWinWidth, config.MainWinHeight))
	app.Window = w

	slog.Info(config.MsgOpenClocksWin,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyCount, app.recordCount())

	app.emptyLabel = widget.NewLabel(app.GetMsg(config.TKeyLblEmptyList))
	app.emptyLabel.Alignment = fyne.TextAlignCenter

	list := widget.NewList(
		// Length callback
		func() int {
			return app.recordCount()
		},
		// Create item callback
		func() fyne.CanvasObject {
			name := widget.NewLabel(rowPlaceholder)
			name.TextStyle = fyne.TextStyle{Bold: true}
			subtitle := widget.NewLabel(rowPlaceholder)

			marker := widget.NewLabel(rowPlaceholder)
			digital := widget.NewLabel(rowPlaceholder)
			digital.TextStyle = fyne.TextStyle{Monospace: true}
			deleteBtn := widget.NewButtonWithIcon("", theme.DeleteIcon(), nil)

			return container.NewHBox(
				container.NewVBox(name, subtitle),
				layout.NewSpacer(),
				marker,
				digital,
				deleteBtn,
			)
		},
		// Update item callback
		func(id widget.ListItemID, o fyne.CanvasObject) {
			rec, ok := app.recordAt(id)
			if !ok {
				return
			}

			row := o.(*fyne.Container)
			info := row.Objects[0].(*fyne.Container)
			name := info.Objects[0].(*widget.Label)
			subtitle := info.Objects[1].(*widget.Label)
			marker := row.Objects[2].(*widget.Label)
			digital := row.Objects[3].(*widget.Label)
			deleteBtn := row.Objects[4].(*widget.Button)

			p := engine.Project(app.Clock.Now(), rec.OffsetHours)

			name.SetText(rec.Value)
			subtitle.SetText(rowSubtitle(rec))
			marker.SetText(markerFor(p))
			digital.SetText(p.Digital)
			deleteBtn.OnTapped = func() {
				app.performDelete(rec)
			}
		},
	)

	list.OnSelected = func(id widget.ListItemID) {
		if rec, ok := app.recordAt(id); ok {
			app.ShowDetailWindow(rec)
		}
		list.UnselectAll()
	}
	app.clockList = list

	toolbar := widget.NewToolbar(
		widget.NewToolbarAction(theme.ContentAddIcon(), app.ShowAddWindow),
		widget.NewToolbarSpacer(),
		widget.NewToolbarAction(theme.SettingsIcon(), app.ShowSettingsWindow),
	)

	w.SetContent(container.NewBorder(toolbar, nil, nil, nil,
		container.NewStack(list, app.emptyLabel)))

	app.refreshClockList()

	w.SetCloseIntercept(func() {
		w.Hide()
	})
}

// refreshClockList redraws the clock rows and toggles the empty-state label.
func (app *WorldClockApp) refreshClockList() {
	if app.clockList == nil {
		return
	}

	if app.emptyLabel != nil {
		if app.recordCount() == 0 {
			app.emptyLabel.Show()
		} else {
			app.emptyLabel.Hide()
		}
	}

	app.clockList.Refresh()
}
