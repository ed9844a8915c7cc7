package ui

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/tartampluch/go-worldclock/internal/catalog"
	"github.com/tartampluch/go-worldclock/internal/config"
	"github.com/tartampluch/go-worldclock/internal/engine"
)

// ShowAddWindow opens the add-clock window, a singleton with two tabs:
// pick an entry from the bundled catalog, or describe a custom zone.
func (app *WorldClockApp) ShowAddWindow() {
	if app.addWindow != nil {
		app.addWindow.RequestFocus()
		return
	}

	slog.Info(config.MsgOpenAddWin,
		config.LogKeyComponent, config.CompUIAdd,
		config.LogKeyEntries, len(app.Catalog))

	w := app.App.NewWindow(app.GetMsg(config.TKeyWinAdd))
	w.Resize(fyne.NewSize(config.AddWinWidth, config.AddWinHeight))
	app.addWindow = w
	w.SetOnClosed(func() {
		app.addWindow = nil
	})

	tabs := container.NewAppTabs(
		container.NewTabItem(app.GetMsg(config.TKeyTabCatalog), app.buildCatalogTab(w)),
		container.NewTabItem(app.GetMsg(config.TKeyTabCustom), app.buildCustomTab(w)),
	)
	tabs.SetTabLocation(container.TabLocationTop)

	w.SetContent(tabs)
	w.Show()
}

// buildCatalogTab renders a filterable view of the bundled dataset.
// Selecting an entry saves it immediately.
func (app *WorldClockApp) buildCatalogTab(w fyne.Window) fyne.CanvasObject {
	matches := app.Catalog

	search := widget.NewEntry()
	search.SetPlaceHolder(app.GetMsg(config.TKeyPlhSearch))

	var results *widget.List
	results = widget.NewList(
		func() int {
			return len(matches)
		},
		func() fyne.CanvasObject {
			name := widget.NewLabel(rowPlaceholder)
			offset := widget.NewLabel(rowPlaceholder)
			offset.TextStyle = fyne.TextStyle{Monospace: true}
			return container.NewBorder(nil, nil, nil, offset, name)
		},
		func(id widget.ListItemID, o fyne.CanvasObject) {
			if id < 0 || id >= len(matches) {
				return
			}
			entry := matches[id]
			row := o.(*fyne.Container)
			for _, obj := range row.Objects {
				label := obj.(*widget.Label)
				if label.TextStyle.Monospace {
					label.SetText("UTC" + engine.FormatOffset(entry.Offset))
				} else {
					label.SetText(entry.Text)
				}
			}
		},
	)

	search.OnChanged = func(query string) {
		matches = catalog.Filter(app.Catalog, query)
		slog.Debug(config.MsgCatalogFiltered,
			config.LogKeyComponent, config.CompUIAdd,
			config.LogKeyQuery, query,
			config.LogKeyMatches, len(matches))
		results.Refresh()
	}

	results.OnSelected = func(id widget.ListItemID) {
		results.UnselectAll()
		if id < 0 || id >= len(matches) {
			return
		}
		app.performAdd(matches[id].Record())
		w.Close()
	}

	return container.NewBorder(search, nil, nil, nil, results)
}

// buildCustomTab renders the manual entry form for zones that are not in
// the catalog, or that the user wants to rename.
func (app *WorldClockApp) buildCustomTab(w fyne.Window) fyne.CanvasObject {
	nameEntry := widget.NewEntry()

	abbrEntry := widget.NewEntry()

	offsetEntry := NewDecimalEntry()
	offsetEntry.Validator = func(s string) error {
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			return errors.New(app.GetMsg(config.TKeyErrOffsetNum))
		}
		return nil
	}

	dstCheck := widget.NewCheck(app.GetMsg(config.TKeyLblDST), nil)

	descEntry := widget.NewEntry()

	regionsEntry := widget.NewEntry()

	form := widget.NewForm(
		widget.NewFormItem(app.GetMsg(config.TKeyLblName), nameEntry),
		widget.NewFormItem(app.GetMsg(config.TKeyLblAbbr), abbrEntry),
		&widget.FormItem{
			Text:     app.GetMsg(config.TKeyLblOffset),
			Widget:   offsetEntry,
			HintText: app.GetMsg(config.TKeyHelpOffset),
		},
		widget.NewFormItem("", dstCheck),
		widget.NewFormItem(app.GetMsg(config.TKeyLblDescription), descEntry),
		&widget.FormItem{
			Text:     app.GetMsg(config.TKeyLblRegions),
			Widget:   regionsEntry,
			HintText: app.GetMsg(config.TKeyHelpRegions),
		},
	)

	addBtn := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnAdd), theme.ContentAddIcon(), func() {
		if err := offsetEntry.Validate(); err != nil {
			slog.Warn(config.ErrOffsetParse,
				config.LogKeyComponent, config.CompUIAdd,
				config.LogKeyOffset, offsetEntry.Text)
			return
		}
		offset, _ := strconv.ParseFloat(offsetEntry.Text, 64)

		rec := engine.NewTimezoneRecord(
			nameEntry.Text,
			abbrEntry.Text,
			offset,
			dstCheck.Checked,
			descEntry.Text,
			splitRegions(regionsEntry.Text),
		)
		app.performAdd(rec)
		w.Close()
	})
	addBtn.Importance = widget.HighImportance

	cancelBtn := widget.NewButtonWithIcon(app.GetMsg(config.TKeyBtnCancel), theme.CancelIcon(), func() {
		w.Close()
	})

	buttons := container.NewGridWithColumns(config.LayoutColumnsDouble, cancelBtn, addBtn)

	return container.NewBorder(nil, buttons, nil, nil, form)
}

// splitRegions turns the comma-separated regions field into a clean slice.
func splitRegions(raw string) []string {
	var regions []string
	for _, part := range strings.Split(raw, config.RegionInputSeparator) {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			regions = append(regions, trimmed)
		}
	}
	return regions
}
