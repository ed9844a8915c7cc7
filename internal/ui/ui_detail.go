package ui

import (
	"log/slog"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-worldclock/internal/config"
	"github.com/tartampluch/go-worldclock/internal/engine"
)

// ShowDetailWindow opens a live analog/digital view of one record.
// One window per record: a second request focuses the existing one.
// The window runs its own fast ticker for the continuous second hand and
// stops it when closed.
func (app *WorldClockApp) ShowDetailWindow(rec engine.TimezoneRecord) {
	if w, ok := app.detailWindows[rec.ID]; ok {
		w.RequestFocus()
		return
	}

	slog.Info(config.MsgOpenDetailWin,
		config.LogKeyComponent, config.CompUI,
		config.LogKeyID, rec.ID,
		config.LogKeyName, rec.Value)

	w := app.App.NewWindow(rec.Value)
	w.Resize(fyne.NewSize(config.DetailWinWidth, config.DetailWinHeight))
	app.detailWindows[rec.ID] = w

	face := NewClockFace()

	digital := widget.NewLabel("")
	digital.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	digital.Alignment = fyne.TextAlignCenter

	daytime := widget.NewLabel("")
	daytime.Alignment = fyne.TextAlignCenter

	subtitle := widget.NewLabel(rowSubtitle(rec))
	subtitle.Alignment = fyne.TextAlignCenter

	description := widget.NewLabel(rec.Description)
	description.Wrapping = fyne.TextWrapWord
	description.Alignment = fyne.TextAlignCenter

	regions := widget.NewLabel(engine.JoinUTCIdentifiers(rec.UTCIdentifiers))
	regions.Wrapping = fyne.TextWrapWord
	regions.Alignment = fyne.TextAlignCenter
	regions.TextStyle = fyne.TextStyle{Italic: true}

	update := func(p engine.Projection) {
		face.SetProjection(p)
		digital.SetText(p.Digital)
		if p.IsDaytime {
			daytime.SetText(config.MarkerDay + " " + app.GetMsg(config.TKeyLblDaytime))
		} else {
			daytime.SetText(config.MarkerNight + " " + app.GetMsg(config.TKeyLblNighttime))
		}
	}
	update(engine.Project(app.Clock.Now(), rec.OffsetHours))

	w.SetContent(container.NewBorder(nil,
		container.NewVBox(digital, daytime, subtitle, description, regions),
		nil, nil,
		face,
	))

	done := make(chan struct{})
	w.SetOnClosed(func() {
		close(done)
		delete(app.detailWindows, rec.ID)
	})

	go func() {
		ticker := time.NewTicker(config.HandTickInterval)
		defer ticker.Stop()

		for {
			select {
			case <-app.Ctx.Done():
				return
			case <-done:
				return
			case <-ticker.C:
				update(engine.Project(app.Clock.Now(), rec.OffsetHours))
			}
		}
	}()

	w.Show()
}
